package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"tiendia.app/api/pkg/auth"
	"tiendia.app/api/pkg/global"
)

// AuthMiddleware verifies the store owner's bearer token and attaches the
// store's ObjectID to the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Authorization header missing", nil))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid Authorization header format", nil))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid token", nil))
			c.Abort()
			return
		}

		storeID, err := bson.ObjectIDFromHex(claims.StoreID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid token", nil))
			c.Abort()
			return
		}

		c.Set("store_id", storeID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// SessionMiddleware validates the client-generated cart session id, which
// must be a UUID.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if err := uuid.Validate(sessionID); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid session id", []global.ValidationError{
				{Field: "sessionId", Message: "Session id must be a UUID", Code: "invalid_format"},
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}

func storeIDFromContext(c *gin.Context) bson.ObjectID {
	return c.MustGet("store_id").(bson.ObjectID)
}
