package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
)

// GenreController serves genre CRUD and keyword search.
type GenreController struct {
	genres *repository.Genres
}

func NewGenreController(genres *repository.Genres) *GenreController {
	return &GenreController{genres: genres}
}

type genreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (gc *GenreController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req genreRequest
		if !bindJSON(c, &req) {
			return
		}

		genre, err := gc.genres.Create(c.Request.Context(), req.Name, req.Description)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, genre)
	}
}

func (gc *GenreController) GetAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		genres, err := gc.genres.GetAll(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, genres)
	}
}

func (gc *GenreController) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		genre, err := gc.genres.Get(c.Request.Context(), c.Param("genre_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, genre)
	}
}

func (gc *GenreController) GetByName() gin.HandlerFunc {
	return func(c *gin.Context) {
		genre, err := gc.genres.GetByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, genre)
	}
}

// Search matches ?keyword= against genre names and descriptions.
func (gc *GenreController) Search() gin.HandlerFunc {
	return func(c *gin.Context) {
		genres, err := gc.genres.Search(c.Request.Context(), c.Query("keyword"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, genres)
	}
}

func (gc *GenreController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req genreRequest
		if !bindJSON(c, &req) {
			return
		}

		genre, err := gc.genres.Update(c.Request.Context(), c.Param("genre_id"), req.Name, req.Description)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, genre)
	}
}

func (gc *GenreController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gc.genres.Remove(c.Request.Context(), c.Param("genre_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
