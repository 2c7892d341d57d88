package services

import "errors"

// Errors surfaced to the API layer. State-conflict errors (AlreadyLiked,
// NotLiked, AlreadyFollowing) are rejected actions, not system faults; any
// error outside this set is a storage failure and is reported generically to
// the caller after being logged with detail.
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post has not yet been liked")
	ErrNotAuthorized    = errors.New("user not authorized")
	ErrEmptyComment     = errors.New("comment text is required")
	ErrEmptyPost        = errors.New("post content is required")
)
