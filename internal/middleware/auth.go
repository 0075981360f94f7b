package middleware

import (
	"net/http"
	"strings"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type identityClaims struct {
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// Auth validates the Authorization bearer token and stores the caller
// identity in the request context. Requests without a valid token are
// rejected with 401.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authorization required"},
			)
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		var claims identityClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(identityKey, domain.Identity{
			UserID:      claims.Subject,
			Email:       claims.Email,
			DisplayName: claims.DisplayName,
		})
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Auth, if any.
func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
