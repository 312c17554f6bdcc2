package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/api/handler/v1/request"
	"github.com/jaribu/attendance-api/internal/api/handler/v1/response"
	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/service"
)

type VerificationService interface {
	VerifyAttendance(ctx context.Context, uniqueID, slotText string, now time.Time) (domain.VerificationResult, error)
	History(ctx context.Context, uniqueID string) (domain.Participant, []domain.AttendanceHistoryEntry, error)
}

type ScannerSessionService interface {
	CurrentOrUpcoming(ctx context.Context, day string, clock time.Time) (domain.Session, bool, error)
}

// CheckInHandler serves the scanner station: what session to verify against,
// the verification itself, and a participant's scan history.
type CheckInHandler struct {
	verifier VerificationService
	sessions ScannerSessionService
}

func NewCheckInHandler(verifier VerificationService, sessions ScannerSessionService) *CheckInHandler {
	return &CheckInHandler{
		verifier: verifier,
		sessions: sessions,
	}
}

// HandleScannerData godoc
// @Summary      Get the session the scanner should verify against
// @Tags         check-in
// @Produce      json
// @Param        at   query     string false "RFC 3339 clock override for rehearsals"
// @Success      200  {object}  response.ScannerDataResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /check-in/scanner [get]
func (h *CheckInHandler) HandleScannerData(ctx *gin.Context) {
	now := time.Now()
	if at := ctx.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid 'at' timestamp: %w", err)))
			return
		}
		now = parsed
	}

	day := service.CourseDay(now)

	session, isCurrent, err := h.sessions.CurrentOrUpcoming(ctx.Request.Context(), day, now)
	if err != nil {
		if errors.Is(err, service.ErrNoSessionsConfigured) {
			response.RenderErr(ctx, response.ErrSessionNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleScannerData -> h.sessions.CurrentOrUpcoming -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ScannerDataResponse{
		Day:        day,
		Session:    session,
		IsCurrent:  isCurrent,
		Simulation: now.Weekday() != time.Saturday && now.Weekday() != time.Sunday,
		ServerTime: now,
	})
}

// HandleVerifyCheckIn godoc
// @Summary      Verify a scanned participant against the session being checked in
// @Tags         check-in
// @Produce      json
// @Param        request   body      request.VerifyCheckInRequest true "request body"
// @Success      200      {object}   domain.VerificationResult
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /check-in/verify [post]
func (h *CheckInHandler) HandleVerifyCheckIn(ctx *gin.Context) {
	var req request.VerifyCheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.verifier.VerifyAttendance(ctx.Request.Context(), req.UniqueID, req.SessionTime, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrParticipantNotFound(err))
		case errors.Is(err, service.ErrSessionNotFound):
			// The scanned slot matched no configured session.
			response.RenderErr(ctx, response.ErrInvalidSession(err))
		default:
			err = fmt.Errorf("v1.HandleVerifyCheckIn -> h.verifier.VerifyAttendance -> %w", err)
			response.RenderErr(ctx, response.ErrDatabase(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleAttendanceHistory godoc
// @Summary      Get a participant's attendance history, newest first
// @Tags         check-in
// @Produce      json
// @Param        uniqueID   path      string true "participant unique id"
// @Success      200       {object}   response.AttendanceHistoryResponse
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /check-in/history/{uniqueID} [get]
func (h *CheckInHandler) HandleAttendanceHistory(ctx *gin.Context) {
	uniqueID := ctx.Param("uniqueID")

	participant, history, err := h.verifier.History(ctx.Request.Context(), uniqueID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrParticipantNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleAttendanceHistory -> h.verifier.History -> %w", err)
		response.RenderErr(ctx, response.ErrDatabase(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AttendanceHistoryResponse{
		Participant: participant,
		History:     history,
	})
}
