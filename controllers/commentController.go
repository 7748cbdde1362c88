package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

const defaultRecentCommentLimit = 20

// CommentController serves comment CRUD plus the recent-comment feed.
type CommentController struct {
	comments *repository.Comments
}

func NewCommentController(comments *repository.Comments) *CommentController {
	return &CommentController{comments: comments}
}

type createCommentRequest struct {
	ReviewID string `json:"reviewId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// Create posts a comment as the authenticated user, stamped with
// today's date.
func (cc *CommentController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req createCommentRequest
		if !bindJSON(c, &req) {
			return
		}

		comment, err := cc.comments.Create(c.Request.Context(), req.ReviewID, userID, req.Content, validation.FormatDate(time.Now()))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

func (cc *CommentController) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		comment, err := cc.comments.Get(c.Request.Context(), c.Param("comment_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

func (cc *CommentController) GetAllByReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := cc.comments.GetAllByReview(c.Request.Context(), c.Param("review_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

func (cc *CommentController) GetByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := cc.comments.GetByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// GetRecent returns the newest comments; ?limit= caps the count.
func (cc *CommentController) GetRecent() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := float64(defaultRecentCommentLimit)
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
				return
			}
			limit = parsed
		}

		comments, err := cc.comments.GetRecent(c.Request.Context(), limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

func (cc *CommentController) GetCountByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := cc.comments.GetCountByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

type updateCommentRequest struct {
	ReviewID   string `json:"reviewId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	PostedDate string `json:"postedDate" binding:"required"`
}

func (cc *CommentController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCommentRequest
		if !bindJSON(c, &req) {
			return
		}

		comment, err := cc.comments.Update(c.Request.Context(), c.Param("comment_id"), req.ReviewID, req.UserID, req.Content, req.PostedDate)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

func (cc *CommentController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cc.comments.Remove(c.Request.Context(), c.Param("comment_id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
