package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Prize errors
	ErrInvalidPrizeName = errors.New("invalid prize name")

	// Cache errors
	ErrInvalidPattern = errors.New("invalid invalidation pattern")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Auth errors
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
