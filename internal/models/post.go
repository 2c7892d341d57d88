package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeEntry marks that a user liked a post. The likes array has set
// semantics: at most one entry per user ID.
type LikeEntry struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Comment is owned by its post and stored embedded in the post document.
type Comment struct {
	ID        string    `json:"id" bson:"comment_id"` // UUID, unique within the post
	UserID    string    `json:"user_id" bson:"user_id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Post represents a social media post stored in MongoDB.
// LikesCount and CommentsCount always equal the lengths of their arrays;
// every mutation updates the array and counter in a single document write.
type Post struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"` // ID of the authoring user
	Content       string             `json:"content" bson:"content"`
	Likes         []LikeEntry        `json:"likes" bson:"likes"`
	LikesCount    int                `json:"likes_count" bson:"likes_count"`
	Comments      []Comment          `json:"comments" bson:"comments"`
	CommentsCount int                `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
