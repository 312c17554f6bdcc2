package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/api/handler/v1/request"
	"github.com/jaribu/attendance-api/internal/api/handler/v1/response"
	"github.com/jaribu/attendance-api/internal/config"
	"github.com/jaribu/attendance-api/internal/domain"
	"github.com/jaribu/attendance-api/internal/pkg/jwthelper"
	"github.com/jaribu/attendance-api/internal/service"
)

type AuthService interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login a staff user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("invalid username or password")))
		case errors.Is(err, service.ErrUserInactive):
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrUserInactive))
		default:
			err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, user.ID, user.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleCreateUser godoc
// @Summary      Create a staff user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.CreateUserRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerToken
// @Router       /auth/users [post]
func (h *AuthHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.CreateUser(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: true,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}
