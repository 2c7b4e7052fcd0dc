package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the on-disk text format of created_at columns. It is
// fixed width and UTC so that lexical ordering in SQL matches time ordering.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// parse layouts accepted when reading a column back. The second one is what
// SQLite's CURRENT_TIMESTAMP produces.
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
}

// Timestamp is a UTC instant stored as TEXT and exposed as RFC 3339 in JSON.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to the stored precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(TimestampLayout), nil
}

// Scan implements sql.Scanner. The sqlite driver may hand back a time.Time
// for TIMESTAMP columns or the raw text, depending on how the row was written.
func (t *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("timestamp: unsupported column type %T", value)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("timestamp: cannot parse %q", s)
}
