package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie identifies a guest shopping session.
	SessionCookie = "shop_session"
	scopeKey      = "cart_scope"

	sessionMaxAge = 60 * 60 * 24 * 30 // 30 days, matches the cart TTL order of magnitude
)

// Session resolves the cart scope for the request: the user id for
// authenticated requests, otherwise a cookie-backed guest session id
// (minted on first contact). Scopes are prefixed so a user id can never
// collide with a session id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := Identity(c); ok {
			c.Set(scopeKey, "u:"+id.UserID)
			c.Next()
			return
		}

		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(scopeKey, "s:"+sid)
		c.Next()
	}
}

// CartScope returns the session scope established by Session().
func CartScope(c *gin.Context) string {
	return c.GetString(scopeKey)
}

// GuestScope returns the guest cookie scope even for authenticated
// requests; login uses it to clear the pre-login cart.
func GuestScope(c *gin.Context) string {
	sid, err := c.Cookie(SessionCookie)
	if err != nil || sid == "" {
		return ""
	}
	return "s:" + sid
}
