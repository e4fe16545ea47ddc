package models

import "errors"

// Sentinel errors returned by the repositories. Handlers translate them
// into the API's uniform {message} error responses.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
	ErrNotLiked = errors.New("like not found")
)
