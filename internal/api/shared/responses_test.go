package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, recorder.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Task not found", resp.Error)
	assert.NotEmpty(t, resp.TraceID, "trace ID should be echoed for correlation")
}

func TestRespondWithValidationError(t *testing.T) {
	t.Parallel()

	type registerPayload struct {
		Username string  `json:"username" validate:"required,max=150"`
		Email    string  `json:"email"    validate:"required,email"`
		Password string  `json:"password" validate:"required,min=8,max=72"`
		DueDate  *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	}

	bad := "not-a-date"
	err := Validate.Struct(registerPayload{
		Username: "",
		Email:    "not-an-email",
		Password: "short",
		DueDate:  &bad,
	})
	require.Error(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	RespondWithValidationError(recorder, req, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Validation error", resp.Error)

	// Details use JSON field names, not Go field names.
	assert.Contains(t, resp.Details, "username")
	assert.Contains(t, resp.Details, "email")
	assert.Contains(t, resp.Details, "password")
	assert.Contains(t, resp.Details, "due_date")
	assert.NotContains(t, resp.Details, "Username")

	assert.Equal(t, "this field is required", resp.Details["username"])
	assert.Equal(t, "must be a valid email address", resp.Details["email"])
	assert.Equal(t, "must be at least 8 characters long", resp.Details["password"])
}

func TestRespondWithValidationErrorNonValidator(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	RespondWithValidationError(recorder, req, assert.AnError)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Validation error", resp.Error)
	assert.Empty(t, resp.Details)
}
