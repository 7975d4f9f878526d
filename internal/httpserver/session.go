package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	sessionKey    = "session"

	sessionMaxAge = 30 * 24 * 60 * 60 // seconds
)

// sessionMiddleware assigns each storefront visitor a stable session id,
// carried in a cookie, under which the cart slot is keyed.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := c.Cookie(sessionCookie)
		if err != nil || session == "" {
			session = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, session, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
