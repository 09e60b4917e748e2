package repository

import "errors"

// Sentinel errors returned by the store. Handlers map these to HTTP status
// codes; everything else is treated as an internal failure.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrArticleNotFound = errors.New("article not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEventFull       = errors.New("event is at capacity")
)
