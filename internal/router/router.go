package router

import (
	"github.com/gin-gonic/gin"

	"bloghub/internal/config"
	"bloghub/internal/handlers"
	"bloghub/internal/middleware"
	"bloghub/internal/services"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	tokens := services.NewTokenService(cfg)

	authHandler := handlers.NewAuthHandler(tokens)
	userHandler := handlers.NewUserHandler(tokens)
	categoryHandler := handlers.NewCategoryHandler()
	postHandler := handlers.NewPostHandler()

	// Public routes
	r.POST("/login", authHandler.Login)
	r.POST("/user", userHandler.Create)

	// Token-protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.TokenRequired(tokens))
	{
		authorized.GET("/user", userHandler.List)
		authorized.GET("/user/:id", userHandler.Get)
		authorized.DELETE("/user/me", userHandler.DeleteMe)

		authorized.POST("/categories", categoryHandler.Create)
		authorized.GET("/categories", categoryHandler.List)

		authorized.POST("/post", postHandler.Create)
		authorized.GET("/post", postHandler.List)
		authorized.GET("/search", postHandler.Search)
		authorized.GET("/post/:id", postHandler.Detail)
		authorized.PUT("/post/:id", postHandler.Update)
		authorized.DELETE("/post/:id", postHandler.Delete)
	}
}
