package port

//go:generate mockgen -source=credential_port.go -destination=../mocks/mock_credential_port.go

import (
	"context"

	"stayin/app/domain"
)

// CredentialService is the contract of the external identity provider.
// Screens never touch it; only the account/session usecases do.
type CredentialService interface {
	// SignIn authenticates with the provider and makes the resulting
	// identity the current one observed by the subscription.
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)

	// SignUp registers a new identity with the provider. Profile
	// document creation is the account usecase's responsibility and
	// happens under the returned identity id.
	SignUp(ctx context.Context, traits domain.IdentityTraits, password string) (*domain.Identity, error)

	// SignOut revokes the current provider session. The subscription
	// will also observe the sign-out, but callers must not rely on
	// that alone.
	SignOut(ctx context.Context) error

	// ResetPassword starts the provider's recovery flow for the email.
	ResetPassword(ctx context.Context, email string) error

	// Subscribe yields the identity-change stream. The first observed
	// state is always emitted, then one event per change. The stream
	// closes when ctx is cancelled.
	Subscribe(ctx context.Context) (<-chan domain.IdentityEvent, error)
}

// IdentityProvider is the low-level driver boundary underneath the
// credential gateway, implemented against Ory Kratos.
type IdentityProvider interface {
	LoginWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error)
	RegisterWithPassword(ctx context.Context, traits domain.IdentityTraits, password string) (*domain.ProviderSession, error)
	Logout(ctx context.Context, token string) error
	Recover(ctx context.Context, email string) error

	// Session re-observes the session behind token. Returns
	// domain.ErrNoSession when the token no longer maps to an active
	// provider session.
	Session(ctx context.Context, token string) (*domain.ProviderSession, error)
}
