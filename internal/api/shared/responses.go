package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rfelton/taskboard-api/internal/redact"
)

// ErrorResponse is the standard error envelope.
// Details carries a field -> reason mapping for validation failures.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message, tagged with the request's trace ID when available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithValidationError writes a 400 response carrying a per-field
// error mapping extracted from a validator error. Non-validator errors fall
// back to a plain message.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, err error) {
	response := ErrorResponse{
		Error:   "Validation error",
		TraceID: GetTraceID(r.Context()),
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[jsonFieldName(fe)] = tagMessage(fe)
		}
		response.Details = details
	}

	RespondWithJSON(w, r, http.StatusBadRequest, response)
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs the
// full (redacted) error. 5xx responses log at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		TraceID: traceID,
	})
}

// jsonFieldName converts a validator field reference to its JSON name.
// validator reports Go field names; request structs keep them aligned with
// the snake_case JSON tags, so lowering the first rune is sufficient for
// single-word fields and the explicit cases cover the rest.
func jsonFieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "DueDate":
		return "due_date"
	default:
		field := fe.Field()
		if field == "" {
			return field
		}
		return string(field[0]|0x20) + field[1:]
	}
}

// tagMessage maps validation tags to stable, user-facing reasons.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
