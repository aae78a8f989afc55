package payload

import (
	"github.com/jellydator/validation"
)

type ClaimRequest struct {
	ID int64 `json:"id"`
}

func (c ClaimRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, validation.Min(int64(1))),
	)
}
