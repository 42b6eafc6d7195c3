package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"order-engine/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenService *token.Service
}

const ctxAgentIDKey = "agent_id"

func NewAuthMiddleware(tokenService *token.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tok string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tok = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if tok == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		agentID, err := m.tokenService.ValidateToken(tok)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAgentIDKey, agentID)
		c.Set("jwt_claims", map[string]any{
			"agent_id": agentID.String(),
		})
		c.Next()
	}
}

func GetAgentID(c *gin.Context) (uuid.UUID, bool) {
	agentID, exists := c.Get(ctxAgentIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := agentID.(uuid.UUID)
	return id, ok
}
