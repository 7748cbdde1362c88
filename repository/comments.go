package repository

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

// Comments owns the comments collection.
type Comments struct {
	coll Collection
}

func NewComments(coll Collection) *Comments {
	return &Comments{coll: coll}
}

// Create inserts a comment on a review.
func (c *Comments) Create(ctx context.Context, reviewID, userID, content, postedDate string) (*models.Comment, error) {
	if err := validation.RequireAll(reviewID, userID, content, postedDate); err != nil {
		return nil, err
	}

	reviewID, err := validation.CheckID(reviewID, "reviewId")
	if err != nil {
		return nil, err
	}
	userID, err = validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	content, err = validation.CheckString(content, "content")
	if err != nil {
		return nil, err
	}
	postedDate, err = validation.CheckString(postedDate, "postedDate")
	if err != nil {
		return nil, err
	}
	if !validation.IsValidDate(postedDate) {
		return nil, fmt.Errorf("%w: postedDate must be YYYY-MM-DD", models.ErrInvalidArgument)
	}

	comment := models.Comment{
		ReviewID:   reviewID,
		UserID:     userID,
		Content:    content,
		PostedDate: postedDate,
	}

	id, err := c.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id
	return &comment, nil
}

// Get fetches one comment.
func (c *Comments) Get(ctx context.Context, commentID string) (*models.Comment, error) {
	if err := validation.RequireAll(commentID); err != nil {
		return nil, err
	}
	commentID, err := validation.CheckID(commentID, "commentId")
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid(commentID)}, &comment); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("comment %s", commentID))
	}
	return &comment, nil
}

// GetAllByReview lists every comment on one review.
func (c *Comments) GetAllByReview(ctx context.Context, reviewID string) ([]models.Comment, error) {
	if err := validation.RequireAll(reviewID); err != nil {
		return nil, err
	}
	reviewID, err := validation.CheckID(reviewID, "reviewId")
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	if err := c.coll.Find(ctx, bson.M{"reviewId": reviewID}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByUser lists every comment one user has posted.
func (c *Comments) GetByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	if err := validation.RequireAll(userID); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	if err := c.coll.Find(ctx, bson.M{"userId": userID}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetRecent returns the newest comments, at most limit of them.
func (c *Comments) GetRecent(ctx context.Context, limit float64) ([]models.Comment, error) {
	if err := validation.RequireAll(limit); err != nil {
		return nil, err
	}
	limit, err := validation.CheckNumber(limit, "limit")
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit != math.Trunc(limit) {
		return nil, fmt.Errorf("%w: limit must be a positive whole number", models.ErrInvalidArgument)
	}

	comments := []models.Comment{}
	opts := options.Find().SetSort(bson.D{{Key: "postedDate", Value: -1}}).SetLimit(int64(limit))
	if err := c.coll.Find(ctx, bson.M{}, &comments, opts); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCountByUser counts the comments one user has posted.
func (c *Comments) GetCountByUser(ctx context.Context, userID string) (int64, error) {
	if err := validation.RequireAll(userID); err != nil {
		return 0, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return 0, err
	}
	return c.coll.CountDocuments(ctx, bson.M{"userId": userID})
}

// Update replaces a comment's fields and returns the updated document.
func (c *Comments) Update(ctx context.Context, commentID, reviewID, userID, content, postedDate string) (*models.Comment, error) {
	if err := validation.RequireAll(commentID, reviewID, userID, content, postedDate); err != nil {
		return nil, err
	}

	commentID, err := validation.CheckID(commentID, "commentId")
	if err != nil {
		return nil, err
	}
	reviewID, err = validation.CheckID(reviewID, "reviewId")
	if err != nil {
		return nil, err
	}
	userID, err = validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	content, err = validation.CheckString(content, "content")
	if err != nil {
		return nil, err
	}
	postedDate, err = validation.CheckString(postedDate, "postedDate")
	if err != nil {
		return nil, err
	}
	if !validation.IsValidDate(postedDate) {
		return nil, fmt.Errorf("%w: postedDate must be YYYY-MM-DD", models.ErrInvalidArgument)
	}

	update := bson.M{"$set": bson.M{
		"reviewId":   reviewID,
		"userId":     userID,
		"content":    content,
		"postedDate": postedDate,
	}}

	var comment models.Comment
	if err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid(commentID)}, update, &comment); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("comment %s", commentID))
	}
	return &comment, nil
}

// Remove deletes one comment.
func (c *Comments) Remove(ctx context.Context, commentID string) error {
	if err := validation.RequireAll(commentID); err != nil {
		return err
	}
	commentID, err := validation.CheckID(commentID, "commentId")
	if err != nil {
		return err
	}

	deleted, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid(commentID)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: comment %s", models.ErrNotFound, commentID)
	}
	return nil
}
