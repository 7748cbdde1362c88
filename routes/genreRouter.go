package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/controllers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/helpers"
	"github.com/Seabass5831/CS-546-Project-Song-Review/middleware"
)

func GenreRoutes(router *gin.Engine, genres *controllers.GenreController, tokens *helpers.TokenMaker) {
	router.GET("/genres", genres.GetAll())
	router.GET("/genres/search", genres.Search())
	router.GET("/genres/name/:name", genres.GetByName())
	router.GET("/genres/:genre_id", genres.Get())

	genreGroup := router.Group("/genres")
	genreGroup.Use(middleware.Authentication(tokens))
	{
		genreGroup.POST("", genres.Create())
		genreGroup.PUT("/:genre_id", genres.Update())
		genreGroup.DELETE("/:genre_id", genres.Delete())
	}
}
