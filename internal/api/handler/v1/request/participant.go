package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateParticipantRequest struct {
	Email      string `json:"email"`
	Surname    string `json:"surname"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Phone      string `json:"phone"`
	HasLaptop  bool   `json:"has_laptop"`
}

func (req *CreateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.SecondName, validation.Length(0, 100)),
		validation.Field(&req.Phone, validation.Required, validation.Length(6, 20)),
	)
}

type ResetSessionsRequest struct {
	Day string `json:"day"`
}

func (req *ResetSessionsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Day, validation.Required, validation.In("Saturday", "Sunday")),
	)
}
