package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatbotService/models"
)

const principalKey = "auth.principal"

// Middleware guards a route group with Bearer session tokens. A missing,
// malformed, invalid, or expired token aborts the request with 401; on
// success the Principal is stored in the gin context.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := ParseFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Msg: "Missing or invalid token"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// PrincipalFromContext retrieves the Principal stored by Middleware.
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}
