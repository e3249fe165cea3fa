package middleware

import (
	"net/http"
	"strings"
	"time"

	"autoconecta/services/identity"
	"autoconecta/utils"

	"github.com/gin-gonic/gin"
)

// SessionKey is where the resolved AuthSession lives in the gin context.
const SessionKey = "session"

// SessionAuthMiddleware resolves the bearer token against the local
// session cache and stores the session in the request context. With
// optional=true an absent or stale session passes through with no
// session set, so the handler decides; otherwise the request is
// rejected with 401.
func SessionAuthMiddleware(gw identity.Gateway, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		session := gw.CurrentSession(token)
		if session != nil && !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
			session = nil
		}

		if session == nil {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No estás autenticado"})
			return
		}

		c.Set(SessionKey, session)
		c.Set("token", token)
		c.Next()
	}
}

// SessionFromContext returns the cached session placed by the
// middleware, or nil when the request is unauthenticated.
func SessionFromContext(c *gin.Context) *utils.AuthSession {
	if v, exists := c.Get(SessionKey); exists {
		if s, ok := v.(*utils.AuthSession); ok {
			return s
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
