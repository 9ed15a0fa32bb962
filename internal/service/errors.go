package service

import "errors"

// Sentinel errors for the membership core. All are terminal: the handler layer
// maps them to a status code and the caller is expected to change its request,
// not retry.
var (
	ErrUnauthenticated   = errors.New("authentication required")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidTransition = errors.New("invalid verification transition")

	ErrPhotoNotFound     = errors.New("photo not found")
	ErrDailyLikeLimit    = errors.New("daily like limit reached")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
)
