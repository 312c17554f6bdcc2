package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/api/handler/v1/response"
	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/service"
)

type SessionDirectoryService interface {
	GetAvailableSessions(ctx context.Context, day string, hasLaptop bool) ([]domain.SessionAvailability, error)
}

type SessionHandler struct {
	svc SessionDirectoryService
}

func NewSessionHandler(svc SessionDirectoryService) *SessionHandler {
	return &SessionHandler{
		svc: svc,
	}
}

// HandleAvailableSessions godoc
// @Summary      List sessions for a day with capacity for the caller's classroom
// @Tags         sessions
// @Produce      json
// @Param        day         query     string true  "Saturday or Sunday"
// @Param        has_laptop  query     bool   false "classroom selector, defaults to false"
// @Success      200         {object}  response.AvailableSessionsResponse
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /sessions/available [get]
func (h *SessionHandler) HandleAvailableSessions(ctx *gin.Context) {
	day := ctx.Query("day")
	hasLaptop := ctx.Query("has_laptop") == "true"

	sessions, err := h.svc.GetAvailableSessions(ctx.Request.Context(), day, hasLaptop)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDayType) {
			response.RenderErr(ctx, response.ErrInvalidDayType(err))
			return
		}

		err = fmt.Errorf("v1.HandleAvailableSessions -> h.svc.GetAvailableSessions -> %w", err)
		response.RenderErr(ctx, response.ErrDatabase(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AvailableSessionsResponse{
		Day:      day,
		Sessions: sessions,
	})
}
