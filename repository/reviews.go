package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"github.com/rs/zerolog/log"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

// Reviews owns the reviews collection. Creation checks that the song and
// user a review points at actually exist, so it also reads those two
// collections.
type Reviews struct {
	coll  Collection
	songs Collection
	users Collection
}

func NewReviews(coll, songs, users Collection) *Reviews {
	return &Reviews{coll: coll, songs: songs, users: users}
}

// Create validates the foreign keys, inserts the review stamped with
// today's date, then back-references the new id onto the song and the
// author. The back-references are best effort; the review itself is
// already durable when they run.
func (r *Reviews) Create(ctx context.Context, songID, userID, text, sentiment string, stars float64) (*models.Review, error) {
	if err := validation.RequireAll(songID, userID, text, sentiment); err != nil {
		return nil, err
	}

	songID, err := validation.CheckID(songID, "songId")
	if err != nil {
		return nil, err
	}
	var song models.Song
	if err := r.songs.FindOne(ctx, bson.M{"_id": oid(songID)}, &song); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("song %s", songID))
	}

	userID, err = validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": oid(userID)}, &user); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("user %s", userID))
	}

	text, err = validation.CheckString(text, "text")
	if err != nil {
		return nil, err
	}
	sentiment, err = validation.CheckString(sentiment, "sentiment")
	if err != nil {
		return nil, err
	}
	stars, err = validation.CheckNumber(stars, "stars")
	if err != nil {
		return nil, err
	}

	review := models.Review{
		SongID:     songID,
		UserID:     userID,
		Text:       text,
		Sentiment:  sentiment,
		Stars:      stars,
		PostedDate: validation.FormatDate(time.Now()),
	}

	id, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id

	reviewID := id.Hex()
	if _, _, err := r.songs.UpdateOne(ctx, bson.M{"_id": oid(songID)}, bson.M{"$push": bson.M{"reviews": reviewID}}); err != nil {
		log.Warn().Err(err).Str("songId", songID).Msg("could not back-reference review on song")
	}
	if _, _, err := r.users.UpdateOne(ctx, bson.M{"_id": oid(userID)}, bson.M{"$push": bson.M{"reviewsPosted": reviewID}}); err != nil {
		log.Warn().Err(err).Str("userId", userID).Msg("could not back-reference review on user")
	}

	return &review, nil
}

// Get fetches one review.
func (r *Reviews) Get(ctx context.Context, reviewID string) (*models.Review, error) {
	if err := validation.RequireAll(reviewID); err != nil {
		return nil, err
	}
	reviewID, err := validation.CheckID(reviewID, "reviewId")
	if err != nil {
		return nil, err
	}

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid(reviewID)}, &review); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("review %s", reviewID))
	}
	return &review, nil
}

// GetAllBySong lists every review of one song.
func (r *Reviews) GetAllBySong(ctx context.Context, songID string) ([]models.Review, error) {
	if err := validation.RequireAll(songID); err != nil {
		return nil, err
	}
	songID, err := validation.CheckID(songID, "songId")
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := r.coll.Find(ctx, bson.M{"songId": songID}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetAllByUser lists every review one user has written.
func (r *Reviews) GetAllByUser(ctx context.Context, userID string) ([]models.Review, error) {
	if err := validation.RequireAll(userID); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := r.coll.Find(ctx, bson.M{"userId": userID}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetAllBySentiment lists reviews carrying the given sentiment label.
func (r *Reviews) GetAllBySentiment(ctx context.Context, sentiment string) ([]models.Review, error) {
	if err := validation.RequireAll(sentiment); err != nil {
		return nil, err
	}
	sentiment, err := validation.CheckString(sentiment, "sentiment")
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := r.coll.Find(ctx, bson.M{"sentiment": sentiment}, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update replaces a review's text, sentiment, stars and posted date.
func (r *Reviews) Update(ctx context.Context, reviewID, text, sentiment string, stars float64, postedDate string) (*models.Review, error) {
	if err := validation.RequireAll(reviewID, text, sentiment, postedDate); err != nil {
		return nil, err
	}

	reviewID, err := validation.CheckID(reviewID, "reviewId")
	if err != nil {
		return nil, err
	}
	text, err = validation.CheckString(text, "text")
	if err != nil {
		return nil, err
	}
	sentiment, err = validation.CheckString(sentiment, "sentiment")
	if err != nil {
		return nil, err
	}
	stars, err = validation.CheckNumber(stars, "stars")
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
		"text":       text,
		"sentiment":  sentiment,
		"stars":      stars,
		"postedDate": postedDate,
	}}

	var review models.Review
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid(reviewID)}, update, &review); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("review %s", reviewID))
	}
	return &review, nil
}

// Remove deletes one review. Comments on it are left dangling.
func (r *Reviews) Remove(ctx context.Context, reviewID string) error {
	if err := validation.RequireAll(reviewID); err != nil {
		return err
	}
	reviewID, err := validation.CheckID(reviewID, "reviewId")
	if err != nil {
		return err
	}

	deleted, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid(reviewID)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: review %s", models.ErrNotFound, reviewID)
	}
	return nil
}
