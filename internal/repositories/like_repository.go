package repositories

import (
	"context"

	"github.com/graceyoon00/MiniWall/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, postID, userID string) error
	HasUserLikedPost(ctx context.Context, postID, userID string) (bool, error)
	CountLikesByPostID(ctx context.Context, postID string) (int64, error)
}

// MongoLikeRepository implements LikeRepository for MongoDB
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoLikeRepository
func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

// EnsureIndexes creates the unique (like_user, like_post) index that keeps
// concurrent likes on the same post from producing duplicate records.
func (r *MongoLikeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "like_user", Value: 1},
			{Key: "like_post", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateLike creates a new like in MongoDB. Returns ErrConflict when the
// (user, post) pair is already present.
func (r *MongoLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	like.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, like)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrConflict
	}
	return err
}

// DeleteLike removes the like a user placed on a post
func (r *MongoLikeRepository) DeleteLike(ctx context.Context, postID, userID string) error {
	filter, err := likeFilter(postID, userID)
	if err != nil {
		return models.ErrNotLiked
	}

	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotLiked
	}
	return nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *MongoLikeRepository) HasUserLikedPost(ctx context.Context, postID, userID string) (bool, error) {
	filter, err := likeFilter(postID, userID)
	if err != nil {
		return false, nil
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountLikesByPostID retrieves the count of like records referencing a post
func (r *MongoLikeRepository) CountLikesByPostID(ctx context.Context, postID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return 0, models.ErrNotFound
	}
	return r.collection.CountDocuments(ctx, bson.M{"like_post": objID})
}

func likeFilter(postID, userID string) (bson.M, error) {
	postObjID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	return bson.M{"like_post": postObjID, "like_user": userObjID}, nil
}
