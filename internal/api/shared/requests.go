package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the process-wide validator instance, shared so struct tag
// metadata is only parsed once.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct. Unknown fields
// are silently dropped; in particular a client-supplied owner field on a task
// payload has nowhere to land and can never influence ownership.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
