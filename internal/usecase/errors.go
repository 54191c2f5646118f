package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("Invalid input")
	ErrProfileNotFound = errors.New("User profile not found")
	ErrInternal        = errors.New("Internal error")

	// errEmbeddingUnavailable marks a requester-level embedding failure;
	// the matching usecase catches it and re-runs the request in flexible
	// mode. It never escapes to callers.
	errEmbeddingUnavailable = errors.New("embedding unavailable")
)
