package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Like represents a (user, post) like pair. At most one exists per pair,
// backed by a unique index on the likes collection.
type Like struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	LikeUser primitive.ObjectID `json:"like_user" bson:"like_user"`
	LikePost primitive.ObjectID `json:"like_post" bson:"like_post"`
}
