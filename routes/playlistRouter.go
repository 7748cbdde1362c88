package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func PlaylistRoutes(router *gin.Engine, playlists *controllers.PlaylistController, tokens *helpers.TokenMaker) {
	router.GET("/playlists/:playlist_id", playlists.Get())
	router.GET("/users/:user_id/playlists", playlists.GetAllByUser())

	playlistGroup := router.Group("/playlists")
	playlistGroup.Use(middleware.Authentication(tokens))
	{
		playlistGroup.POST("", playlists.Create())
		playlistGroup.PUT("/:playlist_id", playlists.Update())
		playlistGroup.DELETE("/:playlist_id", playlists.Delete())
		playlistGroup.PATCH("/:playlist_id/songs/:song_id", playlists.AddSong())
		playlistGroup.DELETE("/:playlist_id/songs/:song_id", playlists.RemoveSong())
	}
}
