package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository/repotest"
)

const (
	testReviewID = "64ddea000000000000000001"
	testUserID   = "64ddea000000000000000002"
)

func newCommentsRepo() (*repository.Comments, *repotest.Collection) {
	coll := repotest.NewCollection()
	return repository.NewComments(coll), coll
}

func TestCommentsCreateAndGet(t *testing.T) {
	comments, _ := newCommentsRepo()
	ctx := context.Background()

	created, err := comments.Create(ctx, testReviewID, testUserID, "totally agree", "2024-01-15")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	got, err := comments.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "totally agree", got.Content)
	assert.Equal(t, testReviewID, got.ReviewID)
}

func TestCommentsCreateBadDate(t *testing.T) {
	comments, coll := newCommentsRepo()

	_, err := comments.Create(context.Background(), testReviewID, testUserID, "hi", "15/01/2024")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Zero(t, coll.Len())
}

func TestCommentsGetAllByReview(t *testing.T) {
	comments, _ := newCommentsRepo()
	ctx := context.Background()

	_, err := comments.Create(ctx, testReviewID, testUserID, "first", "2024-01-01")
	require.NoError(t, err)
	_, err = comments.Create(ctx, testReviewID, testUserID, "second", "2024-01-02")
	require.NoError(t, err)
	_, err = comments.Create(ctx, "64ddea000000000000000009", testUserID, "elsewhere", "2024-01-03")
	require.NoError(t, err)

	got, err := comments.GetAllByReview(ctx, testReviewID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCommentsGetRecentSortsAndLimits(t *testing.T) {
	comments, _ := newCommentsRepo()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		_, err := comments.Create(ctx, testReviewID, testUserID, fmt.Sprintf("comment %d", i), fmt.Sprintf("2024-01-%02d", i))
		require.NoError(t, err)
	}

	recent, err := comments.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "comment 4", recent[0].Content)
	assert.Equal(t, "comment 3", recent[1].Content)
}

func TestCommentsGetRecentRejectsBadLimits(t *testing.T) {
	comments, _ := newCommentsRepo()
	ctx := context.Background()

	for _, limit := range []float64{-1, 2.5} {
		_, err := comments.GetRecent(ctx, limit)
		assert.ErrorIs(t, err, models.ErrInvalidArgument, "limit %v", limit)
	}
}

func TestCommentsGetCountByUser(t *testing.T) {
	comments, _ := newCommentsRepo()
	ctx := context.Background()

	_, err := comments.Create(ctx, testReviewID, testUserID, "one", "2024-01-01")
	require.NoError(t, err)
	_, err = comments.Create(ctx, testReviewID, testUserID, "two", "2024-01-02")
	require.NoError(t, err)

	count, err := comments.GetCountByUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = comments.GetCountByUser(ctx, "64ddea000000000000000009")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCommentsUpdateAndRemove(t *testing.T) {
	comments, _ := newCommentsRepo()
	ctx := context.Background()

	created, err := comments.Create(ctx, testReviewID, testUserID, "draft", "2024-01-01")
	require.NoError(t, err)

	updated, err := comments.Update(ctx, created.ID.Hex(), testReviewID, testUserID, "final", "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)
	assert.Equal(t, "2024-01-02", updated.PostedDate)

	require.NoError(t, comments.Remove(ctx, created.ID.Hex()))
	assert.ErrorIs(t, comments.Remove(ctx, created.ID.Hex()), models.ErrNotFound)
}
