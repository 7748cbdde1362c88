package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
)

// PlaylistController serves playlist CRUD and song membership changes.
type PlaylistController struct {
	playlists *repository.Playlists
}

func NewPlaylistController(playlists *repository.Playlists) *PlaylistController {
	return &PlaylistController{playlists: playlists}
}

type createPlaylistRequest struct {
	Name    string   `json:"name" binding:"required"`
	SongIDs []string `json:"songIds" binding:"required"`
}

// Create builds a playlist owned by the authenticated user.
func (pc *PlaylistController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req createPlaylistRequest
		if !bindJSON(c, &req) {
			return
		}

		playlist, err := pc.playlists.Create(c.Request.Context(), userID, req.Name, req.SongIDs)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, playlist)
	}
}

func (pc *PlaylistController) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := pc.playlists.Get(c.Request.Context(), c.Param("playlist_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, playlist)
	}
}

func (pc *PlaylistController) GetAllByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		playlists, err := pc.playlists.GetAllByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, playlists)
	}
}

type updatePlaylistRequest struct {
	Name    string   `json:"name" binding:"required"`
	SongIDs []string `json:"songIds" binding:"required"`
}

func (pc *PlaylistController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePlaylistRequest
		if !bindJSON(c, &req) {
			return
		}

		playlist, err := pc.playlists.Update(c.Request.Context(), c.Param("playlist_id"), req.Name, req.SongIDs)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, playlist)
	}
}

func (pc *PlaylistController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := pc.playlists.Remove(c.Request.Context(), c.Param("playlist_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

func (pc *PlaylistController) AddSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := pc.playlists.AddSong(c.Request.Context(), c.Param("playlist_id"), c.Param("song_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, playlist)
	}
}

func (pc *PlaylistController) RemoveSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := pc.playlists.RemoveSong(c.Request.Context(), c.Param("playlist_id"), c.Param("song_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, playlist)
	}
}
