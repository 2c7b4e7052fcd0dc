package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/folio/pkg/models"
)

func TestTimestamp_ValueIsSortableText(t *testing.T) {
	early := models.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	late := models.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 500_000, time.UTC))

	ev, err := early.Value()
	require.NoError(t, err)
	lv, err := late.Value()
	require.NoError(t, err)

	assert.Equal(t, "2024-01-02 03:04:05.000000", ev)
	assert.Equal(t, "2024-01-02 03:04:05.000500", lv)
	assert.Less(t, ev.(string), lv.(string))
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2024, 5, 6, 7, 8, 9, 123000, time.UTC)

	cases := map[string]any{
		"stored layout":     "2024-05-06 07:08:09.000123",
		"bytes":             []byte("2024-05-06 07:08:09.000123"),
		"time value":        want,
		"rfc3339":           "2024-05-06T07:08:09.000123Z",
		"current_timestamp": "2024-05-06 07:08:09",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			var ts models.Timestamp
			require.NoError(t, ts.Scan(in))
			if name == "current_timestamp" {
				assert.Equal(t, want.Truncate(time.Second), ts.Time)
				return
			}
			assert.True(t, want.Equal(ts.Time), "got %v", ts.Time)
		})
	}

	var ts models.Timestamp
	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(42))
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := models.NewTimestamp(time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("x", 3600)))
	b, err := json.Marshal(struct {
		CreatedAt models.Timestamp `json:"created_at"`
	}{ts})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `"2024-05-06T06:08:09Z"`), string(b))
}
