package middleware

import (
	"net/http"
	"strings"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/security"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authz extracts and enforces bearer-token identity.
type Authz struct {
	tokens *security.TokenIssuer
}

func NewAuthz(tokens *security.TokenIssuer) *Authz {
	return &Authz{tokens: tokens}
}

// Identify parses the bearer token when present and stores the identity
// in the request context. Anonymous requests pass through; guards that
// need a user come later in the chain.
func (a *Authz) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		id, err := a.tokens.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			unauth(c, "invalid_token", "invalid or expired token")
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireUser aborts anonymous requests.
func (a *Authz) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Identity(c); !ok {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts anything but an authenticated admin.
func (a *Authz) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}
		if id.Role != domain.RoleAdmin {
			forbidden(c, "insufficient_role", "admin access required")
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated principal, if any.
func Identity(c *gin.Context) (security.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return security.Identity{}, false
	}
	id, ok := v.(security.Identity)
	return id, ok
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}

func forbidden(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": code, "error_description": desc})
}
