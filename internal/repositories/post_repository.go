package repositories

import (
	"context"
	"time"

	"github.com/linkup-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, id string) error
	DeletePostsByUserID(ctx context.Context, userID string) (int64, error)
	AddLike(ctx context.Context, postID, userID string) (int, error)
	RemoveLike(ctx context.Context, postID, userID string) (int, error)
	AddComment(ctx context.Context, postID string, comment models.Comment) ([]models.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID string) ([]models.Comment, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// postObjectID parses a post ID path value. An ID that is not a valid
// ObjectID cannot match any document, so it reports ErrPostNotFound rather
// than a storage fault.
func postObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrPostNotFound
	}
	return objID, nil
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	if post.Likes == nil {
		post.Likes = []models.LikeEntry{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := postObjectID(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByUserID retrieves posts by a specific user, most recent first
func (r *MongoPostRepository) GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAllPosts retrieves all posts sorted descending by creation time
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost deletes a post by ID from MongoDB
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := postObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

// DeletePostsByUserID deletes all posts authored by a user
func (r *MongoPostRepository) DeletePostsByUserID(ctx context.Context, userID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddLike prepends a like entry and increments the counter in one document
// write. The filter excludes posts already liked by the user, so the
// check-and-insert is atomic. Returns the new likes count.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID string) (int, error) {
	objID, err := postObjectID(postID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	filter := bson.M{"_id": objID, "likes.user_id": bson.M{"$ne": userID}}
	update := bson.M{
		"$push": bson.M{"likes": bson.M{
			"$each":     bson.A{models.LikeEntry{UserID: userID, CreatedAt: now}},
			"$position": 0,
		}},
		"$inc": bson.M{"likes_count": 1},
		"$set": bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Either the post is missing or the user already liked it.
			if _, lookupErr := r.GetPostByID(ctx, postID); lookupErr != nil {
				return 0, lookupErr
			}
			return 0, ErrAlreadyLiked
		}
		return 0, err
	}
	return post.LikesCount, nil
}

// RemoveLike pulls the user's like entry and decrements the counter.
// Returns the new likes count.
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID string) (int, error) {
	objID, err := postObjectID(postID)
	if err != nil {
		return 0, err
	}

	filter := bson.M{"_id": objID, "likes.user_id": userID}
	update := bson.M{
		"$pull": bson.M{"likes": bson.M{"user_id": userID}},
		"$inc":  bson.M{"likes_count": -1},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, lookupErr := r.GetPostByID(ctx, postID); lookupErr != nil {
				return 0, lookupErr
			}
			return 0, ErrNotLiked
		}
		return 0, err
	}
	return post.LikesCount, nil
}

// AddComment prepends the comment and increments the counter in one document
// write. Returns the post's comments after the update.
func (r *MongoPostRepository) AddComment(ctx context.Context, postID string, comment models.Comment) ([]models.Comment, error) {
	objID, err := postObjectID(postID)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$push": bson.M{"comments": bson.M{
			"$each":     bson.A{comment},
			"$position": 0,
		}},
		"$inc": bson.M{"comments_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment pulls the comment by its ID and decrements the counter.
// Returns the post's comments after the update.
func (r *MongoPostRepository) RemoveComment(ctx context.Context, postID, commentID string) ([]models.Comment, error) {
	objID, err := postObjectID(postID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": objID, "comments.comment_id": commentID}
	update := bson.M{
		"$pull": bson.M{"comments": bson.M{"comment_id": commentID}},
		"$inc":  bson.M{"comments_count": -1},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, lookupErr := r.GetPostByID(ctx, postID); lookupErr != nil {
				return nil, lookupErr
			}
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return post.Comments, nil
}
