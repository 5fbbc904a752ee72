package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gamereviewhub/game-review-service/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ExtractToken pulls the bearer token from the access_token cookie or
// the Authorization header.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// CreateAccessToken issues an HS256 token bound to the user id and
// returns it with its lifetime in seconds.
func CreateAccessToken(userID uint, cfg *config.EnvConfig) (string, int, error) {
	expiresIn := cfg.JWT.ExpireMinutes * 60
	claims := jwt.MapClaims{
		"user_id": strconv.FormatUint(uint64(userID), 10),
		"exp":     time.Now().Add(time.Duration(cfg.JWT.ExpireMinutes) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.SecretKey))
	if err != nil {
		return "", 0, err
	}
	return signed, expiresIn, nil
}

func ParseToken(tokenString string, cfg *config.EnvConfig) (*jwt.Token, error) {
	secret := []byte(cfg.JWT.SecretKey)
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

func UserIDFromClaims(claims jwt.MapClaims) (uint, error) {
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return 0, errors.New("invalid user_id claim")
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, errors.New("invalid user_id format")
	}
	return uint(userID), nil
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, errors.New("user_id is missing from context")
	}
	userID, ok := val.(uint)
	if !ok {
		return 0, errors.New("invalid user_id type in context")
	}
	return userID, nil
}
