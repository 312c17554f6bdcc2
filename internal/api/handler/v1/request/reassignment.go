package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateReassignmentRequest struct {
	UniqueID           string `json:"unique_id"`
	DayType            string `json:"day_type"`
	RequestedSessionID uint   `json:"requested_session_id"`
	Reason             string `json:"reason"`
}

func (req *CreateReassignmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UniqueID, validation.Required, validation.Length(5, 5)),
		validation.Field(&req.DayType, validation.Required, validation.In("Saturday", "Sunday")),
		validation.Field(&req.RequestedSessionID, validation.Required),
		validation.Field(&req.Reason, validation.Length(0, 500)),
	)
}

type ProcessReassignmentRequest struct {
	Action     string `json:"action"`
	AdminNotes string `json:"admin_notes"`
}

func (req *ProcessReassignmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Action, validation.Required, validation.In("approve", "reject")),
		validation.Field(&req.AdminNotes, validation.Length(0, 500)),
	)
}
