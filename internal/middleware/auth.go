// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/pkg/auth"
	"github.com/Malmeu/food-force-v2-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing user data
const (
	UserIDKey   = "userID"
	UserTypeKey = "userType"
)

// Auth returns a middleware that validates JWT tokens.
func Auth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Store identity in context for handlers to use
		c.Set(UserIDKey, userID)
		c.Set(UserTypeKey, models.UserType(claims.UserType))

		c.Next()
	}
}

// RequireUserType returns a middleware restricting a route to one account type.
// It must run after Auth.
func RequireUserType(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserType(c) != userType {
			response.Forbidden(c, "this action requires a "+string(userType)+" account")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns the zero ObjectID if not found.
func GetUserID(c *gin.Context) primitive.ObjectID {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return primitive.NilObjectID
	}
	return userID.(primitive.ObjectID)
}

// GetUserType retrieves the authenticated user's account type from the context.
func GetUserType(c *gin.Context) models.UserType {
	userType, exists := c.Get(UserTypeKey)
	if !exists {
		return ""
	}
	return userType.(models.UserType)
}
