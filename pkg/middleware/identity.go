package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"skillsphere/internal/services"
	"skillsphere/pkg/utils"
)

const principalKey = "principal"

// IdentityMiddleware resolves the bearer token on every request. A request
// without a usable token simply carries no principal; routes that need one
// add RequireAuth.
func IdentityMiddleware(identity services.IdentityServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := identity.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		if principal != nil {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// PrincipalFrom returns the caller resolved by IdentityMiddleware, or nil.
func PrincipalFrom(c *gin.Context) *services.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*services.Principal)
	return p
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if PrincipalFrom(c) == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFrom(c)
		if principal == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		if !principal.IsAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
