package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func RecommendationRoutes(router *gin.Engine, recs *controllers.RecommendationController, tokens *helpers.TokenMaker) {
	router.GET("/users/:user_id/recommendations", recs.GetByUser())

	recGroup := router.Group("/recommendations")
	recGroup.Use(middleware.Authentication(tokens))
	{
		recGroup.POST("", recs.Create())
		recGroup.PUT("/user/:user_id", recs.Update())
		recGroup.DELETE("/user/:user_id", recs.Delete())
		recGroup.PATCH("/:recommendation_id/songs/:song_id", recs.AddSong())
		recGroup.DELETE("/:recommendation_id/songs/:song_id", recs.RemoveSong())
	}
}
