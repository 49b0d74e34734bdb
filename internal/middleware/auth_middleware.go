package middleware

import (
	"strings"

	"swiftride/internal/session"
	"swiftride/internal/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionRequired resolves the bearer session id against the session store
// and aborts unauthenticated requests. The bearer value is the opaque
// front-end session id, never the platform token.
func SessionRequired(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		sessionID := strings.TrimPrefix(authHeader, "Bearer ")
		if sessionID == authHeader || sessionID == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		sess, ok := sessions.Get(c.Request.Context(), sessionID)
		if !ok {
			utils.SessionExpiredResponse(c)
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session installed by SessionRequired.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok
}
