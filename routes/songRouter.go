package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func SongRoutes(router *gin.Engine, songs *controllers.SongController, tokens *helpers.TokenMaker) {
	// PUBLIC ROUTES (single-song view carries the user id when a token
	// is present, so handlers can attribute the visit)
	router.GET("/songs", songs.GetAll())
	router.GET("/songs/:song_id", middleware.OptionalAuthentication(tokens), songs.GetByID())
	router.GET("/music/search", songs.Search())
	router.GET("/music/genres", songs.GenreSeeds())
	router.GET("/music/artistgenre", songs.GenreByArtist())

	// PROTECTED ROUTES
	songGroup := router.Group("/songs")
	songGroup.Use(middleware.Authentication(tokens))
	{
		songGroup.POST("", songs.Create())
		songGroup.PUT("/:song_id", songs.Update())
		songGroup.DELETE("/:song_id", songs.Delete())
	}
}
