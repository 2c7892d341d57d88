package services

import (
	"context"
	"errors"

	"github.com/linkup-app/backend/internal/cache"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"go.uber.org/zap"
)

// FeedService assembles a viewer's personalized feed: posts authored by the
// users they follow plus their own, most recent first.
type FeedService interface {
	GetFeed(ctx context.Context, viewer models.Identity) ([]models.Post, error)
}

type feedService struct {
	profiles  repositories.ProfileRepository
	posts     repositories.PostRepository
	feedCache cache.FeedCache
	logger    *zap.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	profiles repositories.ProfileRepository,
	posts repositories.PostRepository,
	feedCache cache.FeedCache,
	logger *zap.Logger,
) FeedService {
	return &feedService{
		profiles:  profiles,
		posts:     posts,
		feedCache: feedCache,
		logger:    logger,
	}
}

// GetFeed returns the viewer's feed. Administrators take a separate
// full-visibility path: every post, no follow filter, and no cache read or
// write. For regular users the cache is probed first; on miss the feed is
// computed from the follow graph and cached with the configured TTL.
func (s *feedService) GetFeed(ctx context.Context, viewer models.Identity) ([]models.Post, error) {
	if viewer.IsAdmin() {
		return s.posts.GetAllPosts(ctx)
	}

	cached, found, err := s.feedCache.GetFeed(ctx, viewer.UserID)
	if err != nil {
		// Cache errors degrade to a recomputation, never a failed request.
		s.logger.Warn("feed cache read failed, recomputing",
			zap.String("viewer_id", viewer.UserID),
			zap.Error(err))
	}
	if found {
		return cached, nil
	}

	feed, err := s.computeFeed(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.feedCache.SetFeed(ctx, viewer.UserID, feed); err != nil {
		s.logger.Warn("failed to cache feed",
			zap.String("viewer_id", viewer.UserID),
			zap.Error(err))
	}

	return feed, nil
}

// computeFeed filters the full descending-ordered post list down to the
// viewer's follow set plus the viewer themselves. Filtering after the global
// sort preserves relative order across authors.
func (s *feedService) computeFeed(ctx context.Context, viewerID string) ([]models.Post, error) {
	followingIDs, err := s.profiles.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	authors := make(map[string]struct{}, len(followingIDs)+1)
	for _, id := range followingIDs {
		authors[id] = struct{}{}
	}
	authors[viewerID] = struct{}{} // a user always sees their own posts

	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if _, ok := authors[post.UserID]; ok {
			feed = append(feed, post)
		}
	}
	return feed, nil
}

// Ensure interface is satisfied at compile time.
var _ FeedService = (*feedService)(nil)
