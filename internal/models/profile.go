package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowEntry is one directed edge of the follow graph, embedded in a profile.
// Both the followers and following arrays keep entries most-recent-first.
type FollowEntry struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Profile represents a user's social profile stored in MongoDB.
// Invariant: A appears in B.Followers exactly when B appears in A.Following.
// The graph service upholds this; the storage layer does not.
type Profile struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"` // Owning user ID, unique
	Bio       string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	Website   string             `json:"website,omitempty" bson:"website,omitempty"`
	Followers []FollowEntry      `json:"followers" bson:"followers"`
	Following []FollowEntry      `json:"following" bson:"following"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// UpsertProfileRequest defines the request body for creating or updating a profile
type UpsertProfileRequest struct {
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location string `json:"location,omitempty" validate:"omitempty,max=100"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
}
