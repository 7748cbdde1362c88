package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
)

// SongController serves the song CRUD surface plus the catalog-backed
// search and genre endpoints.
type SongController struct {
	songs *repository.Songs
}

func NewSongController(songs *repository.Songs) *SongController {
	return &SongController{songs: songs}
}

func (sc *SongController) GetAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		songs, err := sc.songs.GetAll(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, songs)
	}
}

func (sc *SongController) GetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		song, err := sc.songs.GetByID(c.Request.Context(), c.Param("song_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, song)
	}
}

type songRequest struct {
	Title       string   `json:"title" binding:"required"`
	Artist      string   `json:"artist" binding:"required"`
	Album       string   `json:"album" binding:"required"`
	ReleaseDate string   `json:"releaseDate" binding:"required"`
	Genre       []string `json:"genre" binding:"required"`
}

func (sc *SongController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req songRequest
		if !bindJSON(c, &req) {
			return
		}

		song, err := sc.songs.Create(c.Request.Context(), req.Title, req.Artist, req.Album, req.ReleaseDate, req.Genre)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, song)
	}
}

func (sc *SongController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req songRequest
		if !bindJSON(c, &req) {
			return
		}

		song, err := sc.songs.Update(c.Request.Context(), c.Param("song_id"), req.Title, req.Artist, req.Album, req.ReleaseDate, req.Genre)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, song)
	}
}

func (sc *SongController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sc.songs.Remove(c.Request.Context(), c.Param("song_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// Search proxies a track search against the music catalog.
func (sc *SongController) Search() gin.HandlerFunc {
	return func(c *gin.Context) {
		tracks, err := sc.songs.SearchByName(c.Request.Context(), c.Query("name"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, tracks)
	}
}

// GenreSeeds lists the catalog's known genre seeds.
func (sc *SongController) GenreSeeds() gin.HandlerFunc {
	return func(c *gin.Context) {
		seeds, err := sc.songs.GenreSeeds(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, seeds)
	}
}

// GenreByArtist looks up an artist's genres in the catalog.
func (sc *SongController) GenreByArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		genres, err := sc.songs.GenreByArtist(c.Request.Context(), c.Query("artist"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, genres)
	}
}
