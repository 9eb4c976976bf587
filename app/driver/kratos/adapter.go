package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	kratosclient "github.com/ory/kratos-client-go"

	"stayin/app/domain"
)

// Adapter implements the identity-provider port against Kratos native
// (mobile) self-service flows.
type Adapter struct {
	client *Client
	logger *slog.Logger
}

// NewAdapter creates a new Adapter over a Kratos client.
func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// LoginWithPassword runs the native login flow end to end.
func (a *Adapter) LoginWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		return nil, a.transformError(err, httpResp, "create_login_flow")
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, a.transformError(err, httpResp, "submit_login_flow")
	}

	if result.SessionToken == nil {
		return nil, fmt.Errorf("login succeeded but no session token issued")
	}

	session, err := sessionToDomain(&result.Session, *result.SessionToken)
	if err != nil {
		return nil, err
	}

	a.logger.Info("native login completed", "identity_id", session.Identity.ID)
	return session, nil
}

// RegisterWithPassword runs the native registration flow. The Kratos
// after-registration session hook issues a session for the fresh
// identity; without the hook we fall back to an explicit login.
func (a *Adapter) RegisterWithPassword(ctx context.Context, traits domain.IdentityTraits, password string) (*domain.ProviderSession, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		return nil, a.transformError(err, httpResp, "create_registration_flow")
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits:   traitsToMap(traits),
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, a.transformError(err, httpResp, "submit_registration_flow")
	}

	if result.SessionToken == nil || result.Session == nil {
		a.logger.Warn("registration issued no session, falling back to login",
			"identity_id", result.Identity.Id)
		return a.LoginWithPassword(ctx, traits.Email, password)
	}

	session, err := sessionToDomain(result.Session, *result.SessionToken)
	if err != nil {
		return nil, err
	}

	a.logger.Info("native registration completed", "identity_id", session.Identity.ID)
	return session, nil
}

// Logout revokes the session behind token. Already-revoked tokens are
// treated as success.
func (a *Adapter) Logout(ctx context.Context, token string) error {
	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(*kratosclient.NewPerformNativeLogoutBody(token)).
		Execute()
	if err != nil {
		if statusOf(httpResp) == http.StatusUnauthorized {
			return nil
		}
		return a.transformError(err, httpResp, "logout")
	}
	return nil
}

// Recover starts the code-based recovery flow for the email.
func (a *Adapter) Recover(ctx context.Context, email string) error {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRecoveryFlow(ctx).
		Execute()
	if err != nil {
		return a.transformError(err, httpResp, "create_recovery_flow")
	}

	body := kratosclient.UpdateRecoveryFlowWithCodeMethod{
		Method: "code",
		Email:  &email,
	}

	_, httpResp, err = a.client.PublicAPI().FrontendAPI.
		UpdateRecoveryFlow(ctx).
		Flow(flow.Id).
		UpdateRecoveryFlowBody(kratosclient.UpdateRecoveryFlowWithCodeMethodAsUpdateRecoveryFlowBody(&body)).
		Execute()
	if err != nil {
		return a.transformError(err, httpResp, "submit_recovery_flow")
	}

	return nil
}

// Session re-observes the session behind token.
func (a *Adapter) Session(ctx context.Context, token string) (*domain.ProviderSession, error) {
	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		if statusOf(httpResp) == http.StatusUnauthorized || statusOf(httpResp) == http.StatusForbidden {
			return nil, domain.ErrNoSession
		}
		return nil, a.transformError(err, httpResp, "to_session")
	}

	if resp.Active != nil && !*resp.Active {
		return nil, domain.ErrNoSession
	}

	return sessionToDomain(resp, token)
}

// transformError maps provider HTTP failures onto domain errors so
// that nothing Kratos-shaped crosses the gateway boundary.
func (a *Adapter) transformError(err error, httpResp *http.Response, operation string) error {
	status := statusOf(httpResp)

	a.logger.Error("kratos request failed",
		"operation", operation,
		"http_status", status,
		"error", err)

	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized:
		if operation == "submit_registration_flow" {
			return domain.ErrIdentityExists
		}
		return domain.ErrInvalidCredentials
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %s flow expired", domain.ErrProviderUnavailable, operation)
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrProviderUnavailable, operation, err)
	}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
