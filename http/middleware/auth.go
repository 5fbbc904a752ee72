package middlewares

import (
	"github.com/gamereviewhub/game-review-service/config"
	"github.com/gamereviewhub/game-review-service/repository"
	"github.com/gamereviewhub/game-review-service/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and resolves its subject to
// an existing user before the handler runs.
func AuthMiddleware(cfg *config.EnvConfig, repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			utils.JSON401(c, "Authorization token is required")
			c.Abort()
			return
		}

		parsedToken, err := utils.ParseToken(tokenStr, cfg)
		if err != nil || !parsedToken.Valid {
			utils.JSON401(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		userID, err := utils.UserIDFromClaims(claims)
		if err != nil {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		// A token for a deleted account is as invalid as an expired one.
		user, err := repo.UserRepo.FindByID(userID)
		if err != nil {
			utils.JSON401(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}
