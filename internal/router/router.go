package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/handlers"
	"github.com/vacay-dev/vacay/internal/middleware"
	"github.com/vacay-dev/vacay/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth", middleware.RateLimit(5, 10))
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("", handlers.GetMe)
			users.PUT("", handlers.UpdateMe)
		}

		vacations := api.Group("/vacations", middleware.AuthMiddleware())
		{
			vacations.POST("", handlers.CreateVacation)
			vacations.PUT("/:vid", handlers.UpdateVacation)
			vacations.DELETE("/:vid", handlers.DeleteVacation)

			// Nested sub-resources; RequireVacation gates existence and
			// attaches the vacation id before any of these run.
			nested := vacations.Group("/:vid", middleware.RequireVacation())
			{
				nested.POST("/dates", handlers.AddDateRange)
				nested.PUT("/dates/:id", handlers.UpdateDateRange)
				nested.DELETE("/dates/:id", handlers.DeleteDateRange)

				nested.POST("/activities", handlers.AddActivity)
				nested.PUT("/activities/:id", handlers.UpdateActivity)
				nested.DELETE("/activities/:id", handlers.DeleteActivity)

				nested.POST("/comments", handlers.AddComment)
				nested.PUT("/comments/:id", handlers.UpdateComment)
				nested.DELETE("/comments/:id", handlers.DeleteComment)

				nested.POST("/users", handlers.InviteMember)
				nested.DELETE("/users/:id", handlers.RemoveMember)
			}
		}
	}

	return r
}
