package router

import (
	"technews/internal/handlers"
	"technews/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	userHandler := handlers.NewUserHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()

	api := r.Group("/api")
	{
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.GetByID)
		api.POST("/users", userHandler.Create)
		api.POST("/users/login", userHandler.Login)
		api.POST("/users/logout", userHandler.Logout)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)

		api.GET("/posts", postHandler.List)
		api.GET("/posts/:id", postHandler.GetByID)
		api.POST("/posts", postHandler.Create)
		api.PUT("/posts/:id", postHandler.Update)
		api.DELETE("/posts/:id", postHandler.Delete)

		api.GET("/comments", commentHandler.List)
		api.DELETE("/comments/:id", commentHandler.Delete)
	}

	// Session-gated actions
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.PUT("/posts/upvote", postHandler.Upvote)
		authorized.POST("/comments", commentHandler.Create)
	}
}
