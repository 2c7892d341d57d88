package services

import (
	"context"
	"errors"

	"github.com/linkup-app/backend/internal/cache"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"go.uber.org/zap"
)

// ProfileService covers profile reads and writes plus account deletion.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetProfiles(ctx context.Context) ([]models.Profile, error)
	UpsertProfile(ctx context.Context, viewer models.Identity, fields models.UpsertProfileRequest) (*models.Profile, error)
	DeleteAccount(ctx context.Context, viewer models.Identity) error
}

type profileService struct {
	profiles  repositories.ProfileRepository
	posts     repositories.PostRepository
	users     repositories.UserRepository
	feedCache cache.FeedCache
	logger    *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profiles repositories.ProfileRepository,
	posts repositories.PostRepository,
	users repositories.UserRepository,
	feedCache cache.FeedCache,
	logger *zap.Logger,
) ProfileService {
	return &profileService{
		profiles:  profiles,
		posts:     posts,
		users:     users,
		feedCache: feedCache,
		logger:    logger,
	}
}

// GetProfile retrieves a profile by its owning user ID
func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// GetProfiles retrieves all profiles
func (s *profileService) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.GetProfiles(ctx)
}

// UpsertProfile creates or updates the viewer's profile fields
func (s *profileService) UpsertProfile(ctx context.Context, viewer models.Identity, fields models.UpsertProfileRequest) (*models.Profile, error) {
	profile, err := s.profiles.UpsertProfile(ctx, viewer.UserID, fields)
	if err != nil {
		s.logger.Error("failed to upsert profile",
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes the viewer's posts, profile, user row and cached
// feed. Entries referencing the user in other profiles' lists are left to
// read-side tolerance; they age out as those users' graphs change.
func (s *profileService) DeleteAccount(ctx context.Context, viewer models.Identity) error {
	deleted, err := s.posts.DeletePostsByUserID(ctx, viewer.UserID)
	if err != nil {
		s.logger.Error("failed to delete user posts",
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return err
	}

	if err := s.profiles.DeleteProfileByUserID(ctx, viewer.UserID); err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		s.logger.Error("failed to delete profile",
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return err
	}

	if err := s.users.DeleteUser(viewer.UserID); err != nil {
		s.logger.Error("failed to delete user",
			zap.String("user_id", viewer.UserID),
			zap.Error(err))
		return err
	}

	if err := s.feedCache.InvalidateFeed(ctx, viewer.UserID); err != nil {
		s.logger.Warn("failed to invalidate cached feed",
			zap.String("viewer_id", viewer.UserID),
			zap.Error(err))
	}

	s.logger.Info("account deleted",
		zap.String("user_id", viewer.UserID),
		zap.Int64("posts_removed", deleted))
	return nil
}

// Ensure interface is satisfied at compile time.
var _ ProfileService = (*profileService)(nil)
