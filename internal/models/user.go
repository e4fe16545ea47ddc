package models

import (
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered wall user stored in MongoDB
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"` // Store hashed password, ignore for JSON serialization
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=256"`
	Email    string `json:"email" validate:"required,min=6,max=256,email"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,min=6,max=256,email"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}
