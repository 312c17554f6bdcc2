package response

import "net/http"

// Constructors for the stable error codes the API exposes. Clients key
// off Code, so these strings must not change.

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, "bad_request", err)
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, "unauthorized", err)
}

func ErrInternalServerError(err error) *Err {
	return NewErr(http.StatusInternalServerError, "unexpected_error", err)
}

func ErrDatabase(err error) *Err {
	return NewErr(http.StatusInternalServerError, "database_error", err)
}

func ErrParticipantNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, "participant_not_found", err)
}

func ErrSessionNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, "session_not_found", err)
}

func ErrInvalidSession(err error) *Err {
	return NewErr(http.StatusBadRequest, "invalid_session", err)
}

func ErrInvalidDayType(err error) *Err {
	return NewErr(http.StatusBadRequest, "invalid_day_type", err)
}

func ErrSessionDayMismatch(err error) *Err {
	return NewErr(http.StatusBadRequest, "session_day_mismatch", err)
}

func ErrSameSessionRequested(err error) *Err {
	return NewErr(http.StatusBadRequest, "same_session_requested", err)
}

func ErrSessionAtCapacity(err error) *Err {
	return NewErr(http.StatusConflict, "session_at_capacity", err)
}

func ErrMaxReassignmentsReached(err error) *Err {
	return NewErr(http.StatusConflict, "max_reassignments_reached", err)
}

func ErrPendingRequestExists(err error) *Err {
	return NewErr(http.StatusConflict, "pending_request_exists", err)
}

func ErrRequestNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, "request_not_found", err)
}

func ErrRequestAlreadyProcessed(err error) *Err {
	return NewErr(http.StatusConflict, "request_already_processed", err)
}
