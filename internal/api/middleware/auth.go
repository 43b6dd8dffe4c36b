package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID" // Key to store user ID in context
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Success: false, Error: message})
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		tokenString := headerParts[1]

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Debug("token rejected", zap.Error(err))
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid {
			abortUnauthorized(c, "Invalid token")
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			logger.Debug("bad subject in token", zap.String("subject", claims.Subject))
			abortUnauthorized(c, "Invalid user identifier in token")
			return
		}

		// Store user ID in context for downstream handlers
		c.Set(userCtx, userID)
		c.Next()
	}
}

// ServiceOrJWTAuthMiddleware accepts either the automation service
// credential or an operator JWT. Used on endpoints both humans and the
// automation service write to.
func ServiceOrJWTAuthMiddleware(serviceToken, jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	jwtAuth := JWTAuthMiddleware(jwtSecret, logger)
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		headerParts := strings.Split(authHeader, " ")
		if serviceToken != "" && len(headerParts) == 2 && strings.EqualFold(headerParts[0], "bearer") && headerParts[1] == serviceToken {
			c.Next()
			return
		}
		jwtAuth(c)
	}
}

// GetUserIDFromContext returns the authenticated user's ID set by
// JWTAuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (primitive.ObjectID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return primitive.NilObjectID, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}
