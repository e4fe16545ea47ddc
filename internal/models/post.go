package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a wall post stored in MongoDB
type Post struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostTitle       string             `json:"post_title" bson:"post_title"`
	PostDescription string             `json:"post_description" bson:"post_description"`
	PostOwner       primitive.ObjectID `json:"post_owner" bson:"post_owner"`
	PostTimestamp   time.Time          `json:"post_timestamp" bson:"post_timestamp"`
	LikeCount       int                `json:"like_count" bson:"like_count"`
	// CommentCount is persisted for schema compatibility; no operation writes it.
	CommentCount int `json:"comment_count" bson:"comment_count"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	PostTitle       string `json:"post_title" validate:"required,min=6,max=128"`
	PostDescription string `json:"post_description" validate:"required,min=6,max=1024"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	PostTitle       string `json:"post_title" validate:"required,min=6,max=128"`
	PostDescription string `json:"post_description" validate:"required,min=6,max=1024"`
}

// RankPosts orders posts in place for the wall listing: most-liked first,
// ties broken by most recent. Exact ties keep their store iteration order.
func RankPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].LikeCount != posts[j].LikeCount {
			return posts[i].LikeCount > posts[j].LikeCount
		}
		return posts[i].PostTimestamp.After(posts[j].PostTimestamp)
	})
}
