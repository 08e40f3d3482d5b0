// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/boriwala/catalog-backend/internal/models"
	"github.com/boriwala/catalog-backend/internal/utils"
)

// Cookie names for the two login surfaces. The admin panel and the buyer
// storefront each keep their own httpOnly token cookie.
const (
	AdminTokenCookie = "admin_token"
	BuyerTokenCookie = "buyer_token"
)

// extractToken pulls the JWT from the Authorization header or, failing that,
// from either login cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	if token, err := c.Cookie(AdminTokenCookie); err == nil && token != "" {
		return token
	}
	if token, err := c.Cookie(BuyerTokenCookie); err == nil && token != "" {
		return token
	}
	return ""
}

func setIdentity(c *gin.Context, claims *utils.JWTClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// StaffRequired admits admin and editor roles. Must run after AuthRequired.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != string(models.RoleAdmin) && role != string(models.RoleEditor) {
			utils.ForbiddenResponse(c, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired admits only the admin role. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(models.RoleAdmin) {
			utils.ForbiddenResponse(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and lets the
// request through either way. Product reads use it for the pricing gate.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}
