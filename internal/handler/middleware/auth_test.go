//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"order-engine/internal/handler/middleware"
	"order-engine/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(svc)
	r.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		agentID, ok := middleware.GetAgentID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "agent id missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"agent_id": agentID.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	router := newAuthRouter(svc)

	t.Run("valid token resolves the agent id", func(t *testing.T) {
		agentID := uuid.New()
		tok, err := svc.GenerateToken(agentID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), agentID.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := token.NewService("other-secret", time.Hour)
		tok, err := other.GenerateToken(uuid.New())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
