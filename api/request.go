package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/qri-io/jsonschema"
)

const maxBodyBytes = 1 << 20

const (
	msgInvalidBody = "Invalid request body"
	msgInternal    = "internal server error"
	msgNotFound    = "Not found"
)

var validate = validator.New()

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, errorResponse{Error: msg, Details: details}, status)
}

// internalError logs err with the request id and answers with the generic 500 body.
func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.Error(op,
		slog.String("request_id", RequestIDFromContext(r.Context())),
		slog.Any("err", err),
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// compileSchema panics on a malformed schema; schemas are package literals.
func compileSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(fmt.Sprintf("api: invalid request schema: %v", err))
	}
	return rs
}

// decodeJSON reads a size-limited body, checks it against schema and
// unmarshals it into dst. On failure it has already written the 400 response
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, msgInvalidBody, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody, err.Error())
		return false
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, msgInvalidBody, "empty body")
		return false
	}

	keyErrs, err := schema.ValidateBytes(r.Context(), body)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody, err.Error())
		return false
	}
	if len(keyErrs) > 0 {
		details := make([]string, 0, len(keyErrs))
		for _, ke := range keyErrs {
			details = append(details, ke.Error())
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody, details...)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody, err.Error())
		return false
	}
	return true
}
