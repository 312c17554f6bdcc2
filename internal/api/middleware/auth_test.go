package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaribu/attendance-api/internal/pkg/jwthelper"
	"github.com/jaribu/attendance-api/internal/policy"
)

const testSigningKey = "test-key"

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{NewAuthenticator(testSigningKey).VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id": ctx.GetUint(ContextKeyUserID),
			"role":    ctx.GetString(ContextKeyUserRole),
		})
	})
	router.GET("/protected", handlers...)

	return router
}

func TestVerifyJWT(t *testing.T) {
	router := newProtectedRouter()

	token, err := jwthelper.GenerateToken(testSigningKey, 42, "staff")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"staff"`)
}

func TestVerifyJWT_Rejections(t *testing.T) {
	badToken, err := jwthelper.GenerateToken("other-key", 42, "staff")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"wrong signing key", "Bearer " + badToken},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	router := newProtectedRouter(RequirePermission(policy.ActionReset, policy.ResourceParticipants))

	adminToken, err := jwthelper.GenerateToken(testSigningKey, 1, "admin")
	require.NoError(t, err)
	staffToken, err := jwthelper.GenerateToken(testSigningKey, 2, "staff")
	require.NoError(t, err)

	t.Run("admin allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("staff forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+staffToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
