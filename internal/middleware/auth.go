package middleware

import (
	"strings"

	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

const UserKey = "user"

// Auth requires a valid bearer token and stores its subject as the acting
// user in the request context.
func Auth(tokenService *services.TokenService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := tokenService.Validate(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(UserKey, claims.User)

		c.Next()
	}
}

// GetUser returns the acting user, or "" when the server runs without auth.
func GetUser(c *drift.Context) string {
	if user, ok := c.Get(UserKey); ok {
		if u, ok := user.(string); ok {
			return u
		}
	}
	return ""
}
