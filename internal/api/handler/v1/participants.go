package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/api/handler/v1/request"
	"github.com/jaribu/attendance-api/internal/api/handler/v1/response"
	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/service"
)

type ParticipantAdminService interface {
	Create(ctx context.Context, input service.NewParticipant) (domain.Participant, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (domain.Participant, error)
	ResetSessions(ctx context.Context, day string) (int, error)
}

type ParticipantHandler struct {
	svc ParticipantAdminService
}

func NewParticipantHandler(svc ParticipantAdminService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleCreateParticipant godoc
// @Summary      Register a participant with default sessions and a QR badge
// @Tags         participants
// @Produce      json
// @Param        request   body      request.CreateParticipantRequest true "request body"
// @Success      201      {object}   domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerToken
// @Router       /admin/participants [post]
func (h *ParticipantHandler) HandleCreateParticipant(ctx *gin.Context) {
	var req request.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.Create(ctx.Request.Context(), service.NewParticipant{
		Email:      req.Email,
		Surname:    req.Surname,
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		Phone:      req.Phone,
		HasLaptop:  req.HasLaptop,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrParticipantExists))
		case errors.Is(err, service.ErrNoSessionsConfigured):
			response.RenderErr(ctx, response.ErrSessionNotFound(err))
		default:
			err = fmt.Errorf("v1.HandleCreateParticipant -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrDatabase(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleGetParticipant godoc
// @Summary      Get a participant by unique id
// @Tags         participants
// @Produce      json
// @Param        uniqueID   path      string true "participant unique id"
// @Success      200       {object}   domain.Participant
// @Failure      401       {object}   response.Err
// @Failure      403       {object}   response.Err
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Security     BearerToken
// @Router       /admin/participants/{uniqueID} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	participant, err := h.svc.GetByUniqueID(ctx.Request.Context(), ctx.Param("uniqueID"))
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrParticipantNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetParticipant -> h.svc.GetByUniqueID -> %w", err)
		response.RenderErr(ctx, response.ErrDatabase(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleResetSessions godoc
// @Summary      Re-pick default sessions for every participant on a day
// @Tags         participants
// @Produce      json
// @Param        request   body      request.ResetSessionsRequest true "request body"
// @Success      200      {object}   response.ResetSessionsResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerToken
// @Router       /admin/participants/reset-sessions [post]
func (h *ParticipantHandler) HandleResetSessions(ctx *gin.Context) {
	var req request.ResetSessionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	moved, err := h.svc.ResetSessions(ctx.Request.Context(), req.Day)
	if err != nil {
		if errors.Is(err, service.ErrNoSessionsConfigured) {
			response.RenderErr(ctx, response.ErrSessionNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleResetSessions -> h.svc.ResetSessions -> %w", err)
		response.RenderErr(ctx, response.ErrDatabase(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ResetSessionsResponse{
		Day:        req.Day,
		MovedCount: moved,
	})
}
