package routes

import (
	"net/http"

	"github.com/gamereviewhub/game-review-service/http/controller"
	middlewares "github.com/gamereviewhub/game-review-service/http/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}
	r.Use(middles.CORSMiddleware)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiRoutes := r.Group("/api")
	{
		authRoutes := apiRoutes.Group("/auth")
		{
			authRoutes.POST("/register", ctrl.Register)
			authRoutes.POST("/login", ctrl.Login)
		}

		apiRoutes.GET("/me", middles.AuthMiddleware, ctrl.Me)

		gameRoutes := apiRoutes.Group("/games")
		{
			gameRoutes.GET("", ctrl.ListGames)
			gameRoutes.POST("", ctrl.CreateGame)

			gameRoutes.GET("/:id/cover", ctrl.GetCover)
			gameRoutes.POST("/:id/cover", middles.AuthMiddleware, ctrl.UploadCover)
			gameRoutes.DELETE("/:id/cover", middles.AuthMiddleware, ctrl.DeleteCover)
		}

		reviewRoutes := apiRoutes.Group("/reviews")
		{
			reviewRoutes.GET("", ctrl.ListReviews)
			reviewRoutes.POST("", middles.AuthMiddleware, ctrl.CreateReview)
		}
	}

	return r
}
