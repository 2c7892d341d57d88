package repositories

import (
	"context"
	"time"

	"github.com/linkup-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepository defines the interface for profile and follow-graph data operations
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetProfiles(ctx context.Context) ([]models.Profile, error)
	UpsertProfile(ctx context.Context, userID string, fields models.UpsertProfileRequest) (*models.Profile, error)
	DeleteProfileByUserID(ctx context.Context, userID string) error
	IsFollowing(ctx context.Context, viewerID, targetID string) (bool, error)
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
	AddFollowEdge(ctx context.Context, viewerID, targetID string) (*models.Profile, error)
	RemoveFollowEdge(ctx context.Context, viewerID, targetID string) (*models.Profile, error)
}

// MongoProfileRepository implements ProfileRepository for MongoDB
type MongoProfileRepository struct {
	client     *mongo.Client // kept for multi-document transactions
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoProfileRepository
func NewMongoProfileRepository(client *mongo.Client, db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{client: client, collection: db.Collection("profiles")}
}

// CreateProfile creates a new profile document with empty follow lists
func (r *MongoProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.Followers == nil {
		profile.Followers = []models.FollowEntry{}
	}
	if profile.Following == nil {
		profile.Following = []models.FollowEntry{}
	}
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

// GetProfileByUserID retrieves a profile by its owning user ID
func (r *MongoProfileRepository) GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfiles retrieves all profiles
func (r *MongoProfileRepository) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpsertProfile creates or updates the profile fields for a user, leaving the
// follow lists untouched on update and empty on first insert.
func (r *MongoProfileRepository) UpsertProfile(ctx context.Context, userID string, fields models.UpsertProfileRequest) (*models.Profile, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"bio":        fields.Bio,
			"location":   fields.Location,
			"website":    fields.Website,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"followers":  []models.FollowEntry{},
			"following":  []models.FollowEntry{},
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile models.Profile
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteProfileByUserID deletes a profile by its owning user ID
func (r *MongoProfileRepository) DeleteProfileByUserID(ctx context.Context, userID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// IsFollowing checks whether viewerID's following list contains targetID
func (r *MongoProfileRepository) IsFollowing(ctx context.Context, viewerID, targetID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id":           viewerID,
		"following.user_id": targetID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowingIDs returns the IDs of the users that userID follows,
// most recently followed first.
func (r *MongoProfileRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	profile, err := r.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(profile.Following))
	for _, entry := range profile.Following {
		ids = append(ids, entry.UserID)
	}
	return ids, nil
}

// AddFollowEdge inserts viewer at the front of target's followers and target
// at the front of viewer's following. Both document writes run inside one
// multi-document transaction so a partial failure cannot leave the
// bidirectional invariant violated. Returns the target profile after update.
func (r *MongoProfileRepository) AddFollowEdge(ctx context.Context, viewerID, targetID string) (*models.Profile, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	now := time.Now()
	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.collection.UpdateOne(sc,
			bson.M{"user_id": targetID},
			bson.M{
				"$push": bson.M{"followers": bson.M{
					"$each":     bson.A{models.FollowEntry{UserID: viewerID, CreatedAt: now}},
					"$position": 0,
				}},
				"$set": bson.M{"updated_at": now},
			})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrProfileNotFound
		}

		res, err = r.collection.UpdateOne(sc,
			bson.M{"user_id": viewerID},
			bson.M{
				"$push": bson.M{"following": bson.M{
					"$each":     bson.A{models.FollowEntry{UserID: targetID, CreatedAt: now}},
					"$position": 0,
				}},
				"$set": bson.M{"updated_at": now},
			})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrProfileNotFound
		}

		var target models.Profile
		if err := r.collection.FindOne(sc, bson.M{"user_id": targetID}).Decode(&target); err != nil {
			return nil, err
		}
		return &target, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Profile), nil
}

// RemoveFollowEdge removes viewer from target's followers and target from
// viewer's following in one transaction. Pulling an absent entry is a no-op,
// so unfollowing an unfollowed user succeeds without changes.
func (r *MongoProfileRepository) RemoveFollowEdge(ctx context.Context, viewerID, targetID string) (*models.Profile, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	now := time.Now()
	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.collection.UpdateOne(sc,
			bson.M{"user_id": targetID},
			bson.M{
				"$pull": bson.M{"followers": bson.M{"user_id": viewerID}},
				"$set":  bson.M{"updated_at": now},
			})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrProfileNotFound
		}

		res, err = r.collection.UpdateOne(sc,
			bson.M{"user_id": viewerID},
			bson.M{
				"$pull": bson.M{"following": bson.M{"user_id": targetID}},
				"$set":  bson.M{"updated_at": now},
			})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrProfileNotFound
		}

		var target models.Profile
		if err := r.collection.FindOne(sc, bson.M{"user_id": targetID}).Decode(&target); err != nil {
			return nil, err
		}
		return &target, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Profile), nil
}
