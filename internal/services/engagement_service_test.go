package services

import (
	"context"
	"testing"
	"time"

	"github.com/linkup-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEngagementFixture() (EngagementService, *fakePostRepo) {
	posts := &fakePostRepo{}
	svc := NewEngagementService(posts, zap.NewNop())
	return svc, posts
}

func TestLikeIncrementsCount(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())
	viewer := models.Identity{UserID: "viewer"}

	count, err := svc.Like(context.Background(), viewer, post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, post.Likes, 1)
	assert.Equal(t, "viewer", post.Likes[0].UserID)
}

func TestLikeTwiceRejected(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())
	viewer := models.Identity{UserID: "viewer"}

	_, err := svc.Like(context.Background(), viewer, post.ID.Hex())
	require.NoError(t, err)

	_, err = svc.Like(context.Background(), viewer, post.ID.Hex())
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Equal(t, 1, post.LikesCount)
}

func TestLikeMissingPost(t *testing.T) {
	svc, _ := newEngagementFixture()

	_, err := svc.Like(context.Background(), models.Identity{UserID: "viewer"}, "0123456789abcdef01234567")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUnlikeDecrementsCount(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())
	viewer := models.Identity{UserID: "viewer"}

	_, err := svc.Like(context.Background(), viewer, post.ID.Hex())
	require.NoError(t, err)

	count, err := svc.Unlike(context.Background(), viewer, post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, post.Likes)
}

func TestUnlikeWithoutLikeRejected(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())

	_, err := svc.Unlike(context.Background(), models.Identity{UserID: "viewer"}, post.ID.Hex())
	assert.ErrorIs(t, err, ErrNotLiked)
	assert.Equal(t, 0, post.LikesCount)
}

func TestCommentPrepends(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())
	viewer := models.Identity{UserID: "viewer"}

	_, err := svc.Comment(context.Background(), viewer, post.ID.Hex(), "first")
	require.NoError(t, err)
	comments, err := svc.Comment(context.Background(), viewer, post.ID.Hex(), "second")
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "first", comments[1].Text)
	assert.NotEmpty(t, comments[0].ID)
	assert.Equal(t, 2, post.CommentsCount)
}

func TestCommentEmptyTextRejected(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())

	_, err := svc.Comment(context.Background(), models.Identity{UserID: "viewer"}, post.ID.Hex(), "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
	assert.Equal(t, 0, post.CommentsCount)
}

func TestCommentMissingPost(t *testing.T) {
	svc, _ := newEngagementFixture()

	_, err := svc.Comment(context.Background(), models.Identity{UserID: "viewer"}, "0123456789abcdef01234567", "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteCommentByAuthor(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())
	viewer := models.Identity{UserID: "viewer"}

	created, err := svc.Comment(context.Background(), viewer, post.ID.Hex(), "mine")
	require.NoError(t, err)

	comments, err := svc.DeleteComment(context.Background(), viewer, post.ID.Hex(), created[0].ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.Equal(t, 0, post.CommentsCount)
}

func TestDeleteCommentByOtherUserRejected(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())

	created, err := svc.Comment(context.Background(), models.Identity{UserID: "viewer"}, post.ID.Hex(), "mine")
	require.NoError(t, err)

	_, err = svc.DeleteComment(context.Background(), models.Identity{UserID: "other"}, post.ID.Hex(), created[0].ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Len(t, post.Comments, 1)
}

func TestDeleteCommentMissingComment(t *testing.T) {
	svc, posts := newEngagementFixture()
	post := posts.addPost("author", "hello", time.Now())

	_, err := svc.DeleteComment(context.Background(), models.Identity{UserID: "viewer"}, post.ID.Hex(), "no-such-comment")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
