package services

import (
	"context"
	"errors"
	"strings"

	"github.com/linkup-app/backend/internal/cache"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"go.uber.org/zap"
)

// PostService covers post authoring and removal.
type PostService interface {
	CreatePost(ctx context.Context, viewer models.Identity, content string) (*models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	DeletePost(ctx context.Context, viewer models.Identity, postID string) error
}

type postService struct {
	posts     repositories.PostRepository
	feedCache cache.FeedCache
	logger    *zap.Logger
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, feedCache cache.FeedCache, logger *zap.Logger) PostService {
	return &postService{posts: posts, feedCache: feedCache, logger: logger}
}

// CreatePost stores a new post and drops the author's cached feed so their
// next feed read includes it.
func (s *postService) CreatePost(ctx context.Context, viewer models.Identity, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyPost
	}

	post := &models.Post{
		UserID:  viewer.UserID,
		Content: content,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx, viewer.UserID)

	return post, nil
}

// GetPost retrieves a single post by ID
func (s *postService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetPostsByUser retrieves a user's posts, most recent first
func (s *postService) GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return s.posts.GetPostsByUserID(ctx, userID)
}

// DeletePost removes a post. Allowed for the author and for administrators.
func (s *postService) DeletePost(ctx context.Context, viewer models.Identity, postID string) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID != viewer.UserID && !viewer.IsAdmin() {
		return ErrNotAuthorized
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("failed to delete post",
			zap.String("post_id", postID),
			zap.Error(err))
		return err
	}

	s.invalidateFeed(ctx, post.UserID)

	return nil
}

func (s *postService) invalidateFeed(ctx context.Context, viewerID string) {
	if err := s.feedCache.InvalidateFeed(ctx, viewerID); err != nil {
		s.logger.Warn("failed to invalidate cached feed",
			zap.String("viewer_id", viewerID),
			zap.Error(err))
	}
}

// Ensure interface is satisfied at compile time.
var _ PostService = (*postService)(nil)
