package output

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/sprintdeck/sprintdeck/internal/store"
)

// ErrorCode represents a machine-readable error classification.
type ErrorCode string

const (
	ErrGeneral    ErrorCode = "GENERAL_ERROR"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	ErrConflict   ErrorCode = "CONFLICT"
)

// Exit code constants.
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitNotFound   = 2
	ExitValidation = 3
	ExitConflict   = 4
)

// ExitCodeFor maps an ErrorCode to its corresponding exit code.
func ExitCodeFor(code ErrorCode) int {
	switch code {
	case ErrNotFound:
		return ExitNotFound
	case ErrValidation:
		return ExitValidation
	case ErrConflict:
		return ExitConflict
	default:
		return ExitGeneral
	}
}

// Classify picks an ErrorCode for err, defaulting to fallback. Store
// lookups that miss always classify as NOT_FOUND regardless of
// fallback.
func Classify(err error, fallback ErrorCode) ErrorCode {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fallback
}

// successEnvelope is the JSON structure for successful responses.
type successEnvelope struct {
	OK      bool   `json:"ok"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// errorEnvelope is the JSON structure for error responses.
type errorEnvelope struct {
	OK    bool      `json:"ok"`
	Error string    `json:"error"`
	Code  ErrorCode `json:"code"`
}

func writeSuccessEnvelope(w io.Writer, data any, message string) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(successEnvelope{
		OK:      true,
		Data:    data,
		Message: message,
	})
}

func writeErrorEnvelope(w io.Writer, err error, code ErrorCode) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(errorEnvelope{
		OK:    false,
		Error: err.Error(),
		Code:  code,
	})
}
