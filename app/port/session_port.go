package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"

	"stayin/app/domain"
)

// SessionReader is the consumer-facing read surface: the sole channel
// through which the rest of the application learns authentication and
// role state.
type SessionReader interface {
	// Snapshot returns the current atomically-published snapshot.
	Snapshot() domain.Snapshot

	// Watch returns a channel carrying snapshot updates. The channel
	// always delivers the latest snapshot; intermediate values may be
	// coalesced. It closes when ctx is cancelled.
	Watch(ctx context.Context) <-chan domain.Snapshot
}

// SessionUsecase is the full consumer surface: the snapshot plus the
// two mutating operations the screens are allowed to invoke.
type SessionUsecase interface {
	SessionReader

	// Refresh re-fetches the profile for the current identity without
	// altering authentication state. No-op when signed out.
	Refresh(ctx context.Context) error

	// SignOut revokes the provider session and clears the local
	// snapshot synchronously, before the identity stream reacts.
	SignOut(ctx context.Context) error
}

// AccountUsecase drives the unauthenticated entry operations.
type AccountUsecase interface {
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)

	// SignUp creates the identity and then the profile document under
	// the same id. When the profile write fails the identity is kept
	// and the error wraps domain.ErrProfileWriteFailed.
	SignUp(ctx context.Context, req *domain.SignUpRequest) (*domain.Identity, error)

	ResetPassword(ctx context.Context, email string) error
}
