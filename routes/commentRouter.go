package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func CommentRoutes(router *gin.Engine, comments *controllers.CommentController, tokens *helpers.TokenMaker) {
	router.GET("/comments/recent", comments.GetRecent())
	router.GET("/comments/:comment_id", comments.Get())
	router.GET("/reviews/:review_id/comments", comments.GetAllByReview())
	router.GET("/users/:user_id/comments", comments.GetByUser())
	router.GET("/users/:user_id/comments/count", comments.GetCountByUser())

	commentGroup := router.Group("/comments")
	commentGroup.Use(middleware.Authentication(tokens))
	{
		commentGroup.POST("", comments.Create())
		commentGroup.PUT("/:comment_id", comments.Update())
		commentGroup.DELETE("/:comment_id", comments.Delete())
	}
}
