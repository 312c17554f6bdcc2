package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaribu/attendance-api/internal/policy"
)

// RequirePermission aborts with 403 unless the authenticated role may
// perform the given action on the resource. Must run after VerifyJWT.
func RequirePermission(action, resource string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextKeyUserRole)
		if !policy.Allow(role, action, resource) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "forbidden",
				"message": "insufficient permissions",
			})
			return
		}
		ctx.Next()
	}
}
