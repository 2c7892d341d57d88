package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"go.uber.org/zap"
)

// EngagementService applies like, unlike and comment mutations to posts.
// Engagement is read live from the post store; the feed cache is not
// involved in these paths.
type EngagementService interface {
	Like(ctx context.Context, viewer models.Identity, postID string) (int, error)
	Unlike(ctx context.Context, viewer models.Identity, postID string) (int, error)
	Comment(ctx context.Context, viewer models.Identity, postID, text string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, viewer models.Identity, postID, commentID string) ([]models.Comment, error)
}

type engagementService struct {
	posts  repositories.PostRepository
	logger *zap.Logger
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(posts repositories.PostRepository, logger *zap.Logger) EngagementService {
	return &engagementService{posts: posts, logger: logger}
}

// Like records the viewer's like on a post. Liking an already-liked post is
// a rejected action, not a fault. Returns the new likes count.
func (s *engagementService) Like(ctx context.Context, viewer models.Identity, postID string) (int, error) {
	count, err := s.posts.AddLike(ctx, postID, viewer.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			return 0, ErrPostNotFound
		case errors.Is(err, repositories.ErrAlreadyLiked):
			return 0, ErrAlreadyLiked
		}
		s.logger.Error("failed to like post",
			zap.String("post_id", postID),
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Unlike removes the viewer's like. Returns the new likes count.
func (s *engagementService) Unlike(ctx context.Context, viewer models.Identity, postID string) (int, error) {
	count, err := s.posts.RemoveLike(ctx, postID, viewer.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			return 0, ErrPostNotFound
		case errors.Is(err, repositories.ErrNotLiked):
			return 0, ErrNotLiked
		}
		s.logger.Error("failed to unlike post",
			zap.String("post_id", postID),
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Comment prepends a new comment to the post. Returns the post's comments
// after the update.
func (s *engagementService) Comment(ctx context.Context, viewer models.Identity, postID, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    viewer.UserID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	comments, err := s.posts.AddComment(ctx, postID, comment)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("failed to comment on post",
			zap.String("post_id", postID),
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment from a post. Only the comment's author may
// delete it. Returns the post's comments after the update.
func (s *engagementService) DeleteComment(ctx context.Context, viewer models.Identity, postID, commentID string) ([]models.Comment, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	var comment *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			comment = &post.Comments[i]
			break
		}
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != viewer.UserID {
		return nil, ErrNotAuthorized
	}

	comments, err := s.posts.RemoveComment(ctx, postID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			return nil, ErrPostNotFound
		case errors.Is(err, repositories.ErrCommentNotFound):
			// Removed concurrently between the read and the pull.
			return nil, ErrCommentNotFound
		}
		s.logger.Error("failed to delete comment",
			zap.String("post_id", postID),
			zap.String("comment_id", commentID),
			zap.Error(err))
		return nil, err
	}
	return comments, nil
}

// Ensure interface is satisfied at compile time.
var _ EngagementService = (*engagementService)(nil)
