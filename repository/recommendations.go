package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

// Recommendations owns the recommendations collection. Lookups are keyed
// by the userId field; one set per user by convention, not enforced.
type Recommendations struct {
	coll Collection
}

func NewRecommendations(coll Collection) *Recommendations {
	return &Recommendations{coll: coll}
}

// Create inserts a recommendation set for a user.
func (r *Recommendations) Create(ctx context.Context, userID string, recommendedSongs []string) (*models.Recommendation, error) {
	if err := validation.RequireAll(userID, recommendedSongs); err != nil {
		return nil, err
	}

	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	recommendedSongs, err = validation.CheckStringArray(recommendedSongs, "recommendedSongs")
	if err != nil {
		return nil, err
	}

	rec := models.Recommendation{UserID: userID, RecommendedSongs: recommendedSongs}
	id, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

// GetByUser fetches the recommendation set for one user.
func (r *Recommendations) GetByUser(ctx context.Context, userID string) (*models.Recommendation, error) {
	if err := validation.RequireAll(userID); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}

	var rec models.Recommendation
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}, &rec); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("recommendation for user %s", userID))
	}
	return &rec, nil
}

// GetAllByUser lists every recommendation set stored for a user.
func (r *Recommendations) GetAllByUser(ctx context.Context, userID string) ([]models.Recommendation, error) {
	if err := validation.RequireAll(userID); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}

	recs := []models.Recommendation{}
	if err := r.coll.Find(ctx, bson.M{"userId": userID}, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Update replaces a user's recommended-song list.
func (r *Recommendations) Update(ctx context.Context, userID string, recommendedSongs []string) (*models.Recommendation, error) {
	if err := validation.RequireAll(userID, recommendedSongs); err != nil {
		return nil, err
	}

	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	recommendedSongs, err = validation.CheckStringArray(recommendedSongs, "recommendedSongs")
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"recommendedSongs": recommendedSongs}}

	var rec models.Recommendation
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, &rec); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("recommendation for user %s", userID))
	}
	return &rec, nil
}

// Remove deletes a user's recommendation set.
func (r *Recommendations) Remove(ctx context.Context, userID string) error {
	if err := validation.RequireAll(userID); err != nil {
		return err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return err
	}

	deleted, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: recommendation for user %s", models.ErrNotFound, userID)
	}
	return nil
}

// AddSong appends a song to a recommendation set by the set's own id,
// then re-reads it.
func (r *Recommendations) AddSong(ctx context.Context, recommendationID, songID string) (*models.Recommendation, error) {
	if err := validation.RequireAll(recommendationID, songID); err != nil {
		return nil, err
	}
	recommendationID, err := validation.CheckID(recommendationID, "recommendationId")
	if err != nil {
		return nil, err
	}
	songID, err = validation.CheckID(songID, "songId")
	if err != nil {
		return nil, err
	}

	matched, _, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid(recommendationID)},
		bson.M{"$push": bson.M{"recommendedSongs": songID}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: recommendation %s", models.ErrNotFound, recommendationID)
	}
	return r.getByID(ctx, recommendationID)
}

// RemoveSong pulls a song out of a recommendation set, then re-reads it.
func (r *Recommendations) RemoveSong(ctx context.Context, recommendationID, songID string) (*models.Recommendation, error) {
	if err := validation.RequireAll(recommendationID, songID); err != nil {
		return nil, err
	}
	recommendationID, err := validation.CheckID(recommendationID, "recommendationId")
	if err != nil {
		return nil, err
	}
	songID, err = validation.CheckID(songID, "songId")
	if err != nil {
		return nil, err
	}

	matched, _, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid(recommendationID)},
		bson.M{"$pull": bson.M{"recommendedSongs": songID}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: recommendation %s", models.ErrNotFound, recommendationID)
	}
	return r.getByID(ctx, recommendationID)
}

func (r *Recommendations) getByID(ctx context.Context, id string) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid(id)}, &rec); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("recommendation %s", id))
	}
	return &rec, nil
}
