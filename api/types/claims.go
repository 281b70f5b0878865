package types

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/internal/services/auth"
)

// ClaimsContextKey is the gin context key the auth middleware stores the
// validated token claims under
const ClaimsContextKey = "claims"

// CurrentClaims returns the authenticated claims, nil when unauthenticated
func CurrentClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
