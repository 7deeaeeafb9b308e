package middlewares

import (
	"net/http"
	"strings"

	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
)

const guestClaimsKey = "guest_claims"

// TokenParser validates a bearer token and returns its guest claims.
type TokenParser interface {
	ParseToken(token string) (*services.GuestClaims, error)
}

// GuestAuth rejects requests without a valid guest bearer token.
func GuestAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Fail(c, http.StatusUnauthorized, "Guest token required", nil)
			return
		}

		claims, err := parser.ParseToken(strings.TrimSpace(token))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired guest token", nil)
			return
		}

		c.Set(guestClaimsKey, claims)
		c.Next()
	}
}

// GuestClaims returns the claims stored by GuestAuth.
func GuestClaims(c *gin.Context) (*services.GuestClaims, bool) {
	v, ok := c.Get(guestClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.GuestClaims)
	return claims, ok
}
