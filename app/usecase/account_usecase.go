package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"stayin/app/domain"
	"stayin/app/metrics"
	"stayin/app/port"
)

// AccountUsecase drives the unauthenticated entry operations: sign-in,
// sign-up and password recovery. Sign-up creates the identity at the
// provider and then the profile document under the same id.
type AccountUsecase struct {
	creds    port.CredentialService
	profiles port.ProfileStore
	logger   *slog.Logger
}

// NewAccountUsecase creates a new AccountUsecase.
func NewAccountUsecase(
	creds port.CredentialService,
	profiles port.ProfileStore,
	logger *slog.Logger,
) *AccountUsecase {
	return &AccountUsecase{
		creds:    creds,
		profiles: profiles,
		logger:   logger.With("component", "account_usecase"),
	}
}

// SignIn authenticates against the credential provider. Failures are
// returned as values to the caller and never alter the session
// snapshot; the identity stream carries the success forward.
func (u *AccountUsecase) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := u.creds.SignIn(ctx, email, password)
	if err != nil {
		metrics.RecordSignIn("failure")
		u.logger.Warn("sign-in failed", "email", email, "error", err)
		return nil, err
	}

	metrics.RecordSignIn("success")
	u.logger.Info("sign-in succeeded", "identity_id", identity.ID)
	return identity, nil
}

// SignUp registers the identity, then writes the profile document
// keyed by the new identity id. When the profile write fails the
// identity is NOT rolled back: the session settles identity-present /
// profile-absent and routing falls back to the welcome surface until a
// later refresh finds the document. The returned error wraps
// domain.ErrProfileWriteFailed in that case.
func (u *AccountUsecase) SignUp(ctx context.Context, req *domain.SignUpRequest) (*domain.Identity, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordSignUp("invalid")
		return nil, err
	}

	traits := domain.IdentityTraits{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	}

	identity, err := u.creds.SignUp(ctx, traits, req.Password)
	if err != nil {
		metrics.RecordSignUp("failure")
		u.logger.Warn("identity registration failed", "email", req.Email, "error", err)
		return nil, err
	}

	profile, err := domain.NewProfile(identity.ID, req.Email, req.FullName, req.PhoneNumber, req.Role)
	if err != nil {
		metrics.RecordSignUp("profile_write_failed")
		return identity, fmt.Errorf("%w: %w", domain.ErrProfileWriteFailed, err)
	}

	if err := u.profiles.Set(ctx, identity.ID, profile); err != nil {
		// Known inconsistency window, not reconciled automatically.
		metrics.RecordSignUp("profile_write_failed")
		u.logger.Error("profile document write failed after identity creation",
			"identity_id", identity.ID,
			"error", err)
		return identity, fmt.Errorf("%w: %w", domain.ErrProfileWriteFailed, err)
	}

	metrics.RecordSignUp("success")
	u.logger.Info("✅ account registered",
		"identity_id", identity.ID,
		"role", req.Role)
	return identity, nil
}

// ResetPassword starts the provider's recovery flow for the email.
func (u *AccountUsecase) ResetPassword(ctx context.Context, email string) error {
	if err := u.creds.ResetPassword(ctx, email); err != nil {
		u.logger.Warn("password recovery failed", "email", email, "error", err)
		return err
	}
	u.logger.Info("password recovery started", "email", email)
	return nil
}
