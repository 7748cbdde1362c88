package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func ReviewRoutes(router *gin.Engine, reviews *controllers.ReviewController, tokens *helpers.TokenMaker) {
	router.GET("/reviews/:review_id", reviews.Get())
	router.GET("/songs/:song_id/reviews", reviews.GetAllBySong())
	router.GET("/users/:user_id/reviews", reviews.GetAllByUser())
	router.GET("/reviews/sentiment/:sentiment", reviews.GetAllBySentiment())

	reviewGroup := router.Group("/reviews")
	reviewGroup.Use(middleware.Authentication(tokens))
	{
		reviewGroup.POST("", reviews.Create())
		reviewGroup.PUT("/:review_id", reviews.Update())
		reviewGroup.DELETE("/:review_id", reviews.Delete())
	}
}
