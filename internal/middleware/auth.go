package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fieldserve/backoffice/internal/auth"
	"github.com/fieldserve/backoffice/internal/store"
)

// AuthContext resolves the Authorization header to a current user and
// attaches it to the request context. Unlike a REST guard it never aborts:
// a missing, malformed or invalid credential simply leaves the request
// anonymous, and each mutation enforces its own requirement.
func AuthContext(tokens *auth.Tokens, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.Next()
			return
		}

		user, err := st.UserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			// Token subject no longer resolves to a user; stay anonymous.
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), user))
		c.Next()
	}
}
