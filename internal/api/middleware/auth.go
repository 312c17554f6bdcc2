package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/pkg/jwthelper"
)

// Context keys set by the authenticator for downstream handlers.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUserRole = "userRole"
)

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT rejects requests without a valid bearer token and exposes the
// authenticated user's id and role on the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "missing bearer token",
			})
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "invalid or expired token",
			})
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyUserRole, claims.Role)
		ctx.Next()
	}
}
