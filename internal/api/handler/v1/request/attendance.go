package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type VerifyCheckInRequest struct {
	UniqueID    string `json:"unique_id"`
	SessionTime string `json:"session_time"`
}

func (req *VerifyCheckInRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UniqueID, validation.Required, validation.Length(5, 5)),
		validation.Field(&req.SessionTime, validation.Required),
	)
}
