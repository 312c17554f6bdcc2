package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON body returned for every failed request. Code is a
// stable machine-readable identifier; Message is for humans.
type Err struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.Code, e.Message)
}

func NewErr(statusCode int, code string, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Code:       code,
		Message:    err.Error(),
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= 500 {
		zap.L().Error("server error",
			zap.Int("status", err.StatusCode),
			zap.String("code", err.Code),
			zap.String("message", err.Message),
			zap.String("path", ctx.FullPath()),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
