package repositories

import "errors"

// Sentinel errors returned by the storage layer. Services translate these
// into their own taxonomy; anything else is treated as a storage failure.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post not yet liked")
)
