package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
)

// ReviewController serves review CRUD and the per-song, per-user and
// per-sentiment listings.
type ReviewController struct {
	reviews *repository.Reviews
}

func NewReviewController(reviews *repository.Reviews) *ReviewController {
	return &ReviewController{reviews: reviews}
}

type createReviewRequest struct {
	SongID    string  `json:"songId" binding:"required"`
	Text      string  `json:"text" binding:"required"`
	Sentiment string  `json:"sentiment" binding:"required"`
	Stars     float64 `json:"stars" binding:"min=0,max=5"`
}

// Create posts a review as the authenticated user.
func (rc *ReviewController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req createReviewRequest
		if !bindJSON(c, &req) {
			return
		}

		review, err := rc.reviews.Create(c.Request.Context(), req.SongID, userID, req.Text, req.Sentiment, req.Stars)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

func (rc *ReviewController) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := rc.reviews.Get(c.Request.Context(), c.Param("review_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func (rc *ReviewController) GetAllBySong() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := rc.reviews.GetAllBySong(c.Request.Context(), c.Param("song_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

func (rc *ReviewController) GetAllByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := rc.reviews.GetAllByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

func (rc *ReviewController) GetAllBySentiment() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := rc.reviews.GetAllBySentiment(c.Request.Context(), c.Param("sentiment"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

type updateReviewRequest struct {
	Text       string  `json:"text" binding:"required"`
	Sentiment  string  `json:"sentiment" binding:"required"`
	Stars      float64 `json:"stars" binding:"min=0,max=5"`
	PostedDate string  `json:"postedDate" binding:"required"`
}

func (rc *ReviewController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateReviewRequest
		if !bindJSON(c, &req) {
			return
		}

		review, err := rc.reviews.Update(c.Request.Context(), c.Param("review_id"), req.Text, req.Sentiment, req.Stars, req.PostedDate)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func (rc *ReviewController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rc.reviews.Remove(c.Request.Context(), c.Param("review_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
