package middleware

import (
	"net/http"

	"doctorsportal/services/authz"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// TokenVerifier validates a bearer token and returns its email claim.
type TokenVerifier interface {
	ValidateToken(tokenString string) (string, error)
}

// JWTAuthMiddleware rejects requests without a bearer token (401) or with one
// that fails verification (403), and stores the decoded claims otherwise.
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, err := verifier.ValidateToken(tokenString)
		if err != nil {
			RequestLogger(c).Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(claimsKey, authz.Claims{Email: email})
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTAuthMiddleware.
func ClaimsFrom(c *gin.Context) (authz.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return authz.Claims{}, false
	}
	claims, ok := v.(authz.Claims)
	return claims, ok
}
