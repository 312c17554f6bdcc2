package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/api/handler/v1/request"
	"github.com/jaribu/attendance-api/internal/api/handler/v1/response"
	"github.com/jaribu/attendance-api/internal/api/middleware"
	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/service"
)

type ReassignmentArbiter interface {
	CreateRequest(ctx context.Context, participantID uint, dayType string, requestedSessionID uint, reason string) (domain.ReassignmentRequest, error)
	ListParticipantRequests(ctx context.Context, participantID uint) ([]domain.RequestSummary, error)
	ListPendingRequests(ctx context.Context) ([]domain.RequestSummary, error)
	Process(ctx context.Context, requestID, reviewerID uint, approve bool, notes string) (domain.ReassignmentRequest, error)
}

type ParticipantDirectory interface {
	GetByUniqueID(ctx context.Context, uniqueID string) (domain.Participant, error)
}

// ReassignmentHandler exposes the request lifecycle: participants file and
// list requests by their public unique id, staff review them by request id.
type ReassignmentHandler struct {
	svc          ReassignmentArbiter
	participants ParticipantDirectory
}

func NewReassignmentHandler(svc ReassignmentArbiter, participants ParticipantDirectory) *ReassignmentHandler {
	return &ReassignmentHandler{
		svc:          svc,
		participants: participants,
	}
}

// HandleCreateRequest godoc
// @Summary      File a session reassignment request
// @Tags         reassignments
// @Produce      json
// @Param        request   body      request.CreateReassignmentRequest true "request body"
// @Success      201      {object}   domain.ReassignmentRequest
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reassignments [post]
func (h *ReassignmentHandler) HandleCreateRequest(ctx *gin.Context) {
	var req request.CreateReassignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.participants.GetByUniqueID(ctx.Request.Context(), req.UniqueID)
	if err != nil {
		h.renderLookupErr(ctx, "v1.HandleCreateRequest", err)
		return
	}

	created, err := h.svc.CreateRequest(ctx.Request.Context(), participant.ID, req.DayType, req.RequestedSessionID, req.Reason)
	if err != nil {
		h.renderArbitrationErr(ctx, "v1.HandleCreateRequest", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListParticipantRequests godoc
// @Summary      List a participant's reassignment requests, newest first
// @Tags         reassignments
// @Produce      json
// @Param        uniqueID   path      string true "participant unique id"
// @Success      200       {array}    domain.RequestSummary
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /reassignments/participant/{uniqueID} [get]
func (h *ReassignmentHandler) HandleListParticipantRequests(ctx *gin.Context) {
	participant, err := h.participants.GetByUniqueID(ctx.Request.Context(), ctx.Param("uniqueID"))
	if err != nil {
		h.renderLookupErr(ctx, "v1.HandleListParticipantRequests", err)
		return
	}

	requests, err := h.svc.ListParticipantRequests(ctx.Request.Context(), participant.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipantRequests -> h.svc.ListParticipantRequests -> %w", err)
		response.RenderErr(ctx, response.ErrDatabase(err))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// HandleListPendingRequests godoc
// @Summary      List all pending reassignment requests, oldest first
// @Tags         reassignments
// @Produce      json
// @Success      200   {array}   domain.RequestSummary
// @Failure      401   {object}  response.Err
// @Failure      403   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Security     BearerToken
// @Router       /admin/reassignments/pending [get]
func (h *ReassignmentHandler) HandleListPendingRequests(ctx *gin.Context) {
	requests, err := h.svc.ListPendingRequests(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPendingRequests -> h.svc.ListPendingRequests -> %w", err)
		response.RenderErr(ctx, response.ErrDatabase(err))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// HandleProcessRequest godoc
// @Summary      Approve or reject a pending reassignment request
// @Tags         reassignments
// @Produce      json
// @Param        requestID   path      int true "request id"
// @Param        request     body      request.ProcessReassignmentRequest true "request body"
// @Success      200        {object}   domain.ReassignmentRequest
// @Failure      400        {object}   response.Err
// @Failure      401        {object}   response.Err
// @Failure      403        {object}   response.Err
// @Failure      404        {object}   response.Err
// @Failure      409        {object}   response.Err
// @Failure      500        {object}   response.Err
// @Security     BearerToken
// @Router       /admin/reassignments/{requestID}/process [post]
func (h *ReassignmentHandler) HandleProcessRequest(ctx *gin.Context) {
	requestID, err := strconv.ParseUint(ctx.Param("requestID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("request id must be a positive integer")))
		return
	}

	var req request.ProcessReassignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reviewerID := ctx.GetUint(middleware.ContextKeyUserID)

	processed, err := h.svc.Process(ctx.Request.Context(), uint(requestID), reviewerID, req.Action == "approve", req.AdminNotes)
	if err != nil {
		h.renderArbitrationErr(ctx, "v1.HandleProcessRequest", err)
		return
	}

	ctx.JSON(http.StatusOK, processed)
}

func (h *ReassignmentHandler) renderLookupErr(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrParticipantNotFound) {
		response.RenderErr(ctx, response.ErrParticipantNotFound(err))
		return
	}

	err = fmt.Errorf("%v -> h.participants.GetByUniqueID -> %w", op, err)
	response.RenderErr(ctx, response.ErrDatabase(err))
}

func (h *ReassignmentHandler) renderArbitrationErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		response.RenderErr(ctx, response.ErrParticipantNotFound(err))
	case errors.Is(err, service.ErrReassignmentsCapped):
		response.RenderErr(ctx, response.ErrMaxReassignmentsReached(err))
	case errors.Is(err, service.ErrInvalidDayType):
		response.RenderErr(ctx, response.ErrInvalidDayType(err))
	case errors.Is(err, service.ErrSessionNotFound):
		response.RenderErr(ctx, response.ErrSessionNotFound(err))
	case errors.Is(err, service.ErrDayMismatch):
		response.RenderErr(ctx, response.ErrSessionDayMismatch(err))
	case errors.Is(err, service.ErrNoOpRequest):
		response.RenderErr(ctx, response.ErrSameSessionRequested(err))
	case errors.Is(err, service.ErrCapacityExceeded):
		response.RenderErr(ctx, response.ErrSessionAtCapacity(err))
	case errors.Is(err, service.ErrDuplicatePending):
		response.RenderErr(ctx, response.ErrPendingRequestExists(err))
	case errors.Is(err, service.ErrRequestNotFound):
		response.RenderErr(ctx, response.ErrRequestNotFound(err))
	case errors.Is(err, service.ErrAlreadyProcessed):
		response.RenderErr(ctx, response.ErrRequestAlreadyProcessed(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrDatabase(err))
	}
}
