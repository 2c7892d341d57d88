package services

import (
	"context"
	"errors"

	"github.com/linkup-app/backend/internal/cache"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"go.uber.org/zap"
)

// GraphService applies follow and unfollow mutations to the follow graph,
// keeping the two denormalized profile lists consistent.
type GraphService interface {
	Follow(ctx context.Context, viewer models.Identity, targetID string) (*models.Profile, error)
	Unfollow(ctx context.Context, viewer models.Identity, targetID string) (*models.Profile, error)
}

type graphService struct {
	profiles      repositories.ProfileRepository
	notifications repositories.NotificationRepository
	feedCache     cache.FeedCache
	logger        *zap.Logger
}

// NewGraphService creates a new GraphService
func NewGraphService(
	profiles repositories.ProfileRepository,
	notifications repositories.NotificationRepository,
	feedCache cache.FeedCache,
	logger *zap.Logger,
) GraphService {
	return &graphService{
		profiles:      profiles,
		notifications: notifications,
		feedCache:     feedCache,
		logger:        logger,
	}
}

// Follow adds a directed edge viewer -> target. Following an already-followed
// user is rejected rather than recorded twice, so the follower lists stay
// duplicate-free. Returns the target profile after the update.
func (s *graphService) Follow(ctx context.Context, viewer models.Identity, targetID string) (*models.Profile, error) {
	if viewer.UserID == targetID {
		return nil, ErrSelfFollow
	}

	following, err := s.profiles.IsFollowing(ctx, viewer.UserID, targetID)
	if err != nil {
		s.logger.Error("failed to check follow state",
			zap.String("viewer_id", viewer.UserID),
			zap.String("target_id", targetID),
			zap.Error(err))
		return nil, err
	}
	if following {
		return nil, ErrAlreadyFollowing
	}

	target, err := s.profiles.AddFollowEdge(ctx, viewer.UserID, targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("failed to follow user",
			zap.String("viewer_id", viewer.UserID),
			zap.String("target_id", targetID),
			zap.Error(err))
		return nil, err
	}

	// The viewer's cached feed no longer reflects their following set.
	s.invalidateFeed(ctx, viewer.UserID)

	if s.notifications != nil {
		notif := &models.Notification{
			Type:        "follow",
			ActorID:     viewer.UserID,
			RecipientID: targetID,
			Message:     "started following you",
		}
		if err := s.notifications.CreateNotification(notif); err != nil {
			s.logger.Warn("failed to create follow notification",
				zap.String("target_id", targetID),
				zap.Error(err))
		}
	}

	return target, nil
}

// Unfollow removes the edge viewer -> target. Unfollowing a user who was
// never followed is a no-op, not an error. Returns the target profile.
func (s *graphService) Unfollow(ctx context.Context, viewer models.Identity, targetID string) (*models.Profile, error) {
	target, err := s.profiles.RemoveFollowEdge(ctx, viewer.UserID, targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("failed to unfollow user",
			zap.String("viewer_id", viewer.UserID),
			zap.String("target_id", targetID),
			zap.Error(err))
		return nil, err
	}

	s.invalidateFeed(ctx, viewer.UserID)

	return target, nil
}

// invalidateFeed drops the viewer's cached feed. The cache is advisory, so
// a failure is logged and swallowed.
func (s *graphService) invalidateFeed(ctx context.Context, viewerID string) {
	if err := s.feedCache.InvalidateFeed(ctx, viewerID); err != nil {
		s.logger.Warn("failed to invalidate cached feed",
			zap.String("viewer_id", viewerID),
			zap.Error(err))
	}
}

// Ensure interface is satisfied at compile time.
var _ GraphService = (*graphService)(nil)
