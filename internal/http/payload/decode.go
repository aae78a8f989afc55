package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Decoder reads a strict JSON body into object and validates it when object
// implements validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}
