package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a post
type Comment struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CommentPost      primitive.ObjectID `json:"comment_post" bson:"comment_post"`
	CommentContent   string             `json:"comment_content" bson:"comment_content"`
	CommentUser      primitive.ObjectID `json:"comment_user" bson:"comment_user"`
	CommentTimestamp time.Time          `json:"comment_timestamp" bson:"comment_timestamp"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	CommentContent string `json:"comment_content" validate:"required,min=6,max=1024"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	CommentContent string `json:"comment_content" validate:"required,min=6,max=1024"`
}
