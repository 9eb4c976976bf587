package domain

import "errors"

// Session and credential errors
var (
	// Credential provider errors
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIdentityExists      = errors.New("identity already exists")
	ErrNoSession           = errors.New("no active provider session")
	ErrProviderUnavailable = errors.New("credential provider unavailable")

	// Profile store errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")

	// Sign-up errors
	ErrPasswordTooWeak = errors.New("password too weak")
	ErrInvalidRole     = errors.New("invalid role")

	// ErrProfileWriteFailed marks the partial sign-up window: the
	// identity was created but the profile document write failed. The
	// role router's profile-absent fallback keeps such accounts out of
	// every role tree until a later refresh repairs the document.
	ErrProfileWriteFailed = errors.New("identity created but profile write failed")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Local store errors
	ErrLocalStoreClosed = errors.New("local store is not open")
	ErrCacheMiss        = errors.New("cache miss")

	// General errors
	ErrInternal = errors.New("internal error")
)
