package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
)

// RecommendationController serves per-user recommendation sets.
type RecommendationController struct {
	recs *repository.Recommendations
}

func NewRecommendationController(recs *repository.Recommendations) *RecommendationController {
	return &RecommendationController{recs: recs}
}

type recommendationRequest struct {
	RecommendedSongs []string `json:"recommendedSongs" binding:"required"`
}

// Create stores a recommendation set for the authenticated user.
func (rc *RecommendationController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req recommendationRequest
		if !bindJSON(c, &req) {
			return
		}

		rec, err := rc.recs.Create(c.Request.Context(), userID, req.RecommendedSongs)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

func (rc *RecommendationController) GetByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := rc.recs.GetByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func (rc *RecommendationController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recommendationRequest
		if !bindJSON(c, &req) {
			return
		}

		rec, err := rc.recs.Update(c.Request.Context(), c.Param("user_id"), req.RecommendedSongs)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func (rc *RecommendationController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rc.recs.Remove(c.Request.Context(), c.Param("user_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

func (rc *RecommendationController) AddSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := rc.recs.AddSong(c.Request.Context(), c.Param("recommendation_id"), c.Param("song_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func (rc *RecommendationController) RemoveSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := rc.recs.RemoveSong(c.Request.Context(), c.Param("recommendation_id"), c.Param("song_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
