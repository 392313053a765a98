package middleware

import (
	"errors"
	"net/http"

	"doctorsportal/services/authz"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TargetFunc extracts the resource owner a permission is checked against.
type TargetFunc func(c *gin.Context) string

// QueryTarget reads the target from a query parameter.
func QueryTarget(name string) TargetFunc {
	return func(c *gin.Context) string { return c.Query(name) }
}

// NoTarget is used for permissions that do not depend on a resource owner.
func NoTarget(*gin.Context) string { return "" }

// Require enforces perm for the authenticated caller. It must run after
// JWTAuthMiddleware.
func Require(authorizer authz.Authorizer, perm authz.Permission, target TargetFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		err := authorizer.Requires(c.Request.Context(), claims, perm, target(c))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, authz.ErrForbidden):
			RequestLogger(c).Info("permission denied",
				zap.String("email", claims.Email),
				zap.Stringer("permission", perm),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		default:
			RequestLogger(c).Error("permission check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal Server Error",
				"details": "could not verify permissions",
			})
		}
	}
}
