package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"stayin/app/domain"
	"stayin/app/port"
)

const defaultPollInterval = 3 * time.Second

// CredentialGateway adapts the identity-provider driver to the
// CredentialService contract. The provider has no push channel, so the
// identity-change stream is a watcher polling the current session and
// emitting a discrete event only when the observed identity differs
// from the last one emitted. The first observation is always emitted
// so the session machine settles even when signed out.
type CredentialGateway struct {
	provider     port.IdentityProvider
	logger       *slog.Logger
	pollInterval time.Duration

	mu    sync.Mutex
	token string
	kick  chan struct{}
}

// NewCredentialGateway creates a new CredentialGateway.
func NewCredentialGateway(provider port.IdentityProvider, pollInterval time.Duration, logger *slog.Logger) *CredentialGateway {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &CredentialGateway{
		provider:     provider,
		logger:       logger.With("component", "credential_gateway"),
		pollInterval: pollInterval,
		kick:         make(chan struct{}, 1),
	}
}

// SignIn authenticates with the provider and adopts the new session
// token as the one the watcher observes.
func (g *CredentialGateway) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	sess, err := g.provider.LoginWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	g.setToken(sess.Token)
	identity := sess.Identity
	return &identity, nil
}

// SignUp registers a new identity. The provider issues a session for
// the fresh identity, which the watcher adopts immediately.
func (g *CredentialGateway) SignUp(ctx context.Context, traits domain.IdentityTraits, password string) (*domain.Identity, error) {
	sess, err := g.provider.RegisterWithPassword(ctx, traits, password)
	if err != nil {
		return nil, err
	}

	g.setToken(sess.Token)
	identity := sess.Identity
	return &identity, nil
}

// SignOut revokes the current provider session and drops the token.
// Idempotent when already signed out.
func (g *CredentialGateway) SignOut(ctx context.Context) error {
	g.mu.Lock()
	token := g.token
	g.token = ""
	g.mu.Unlock()
	g.nudge()

	if token == "" {
		return nil
	}
	return g.provider.Logout(ctx, token)
}

// ResetPassword starts the provider recovery flow.
func (g *CredentialGateway) ResetPassword(ctx context.Context, email string) error {
	return g.provider.Recover(ctx, email)
}

// Subscribe starts the identity watcher. The returned channel closes
// when ctx is cancelled; the subscription is expected to live for the
// process lifetime.
func (g *CredentialGateway) Subscribe(ctx context.Context) (<-chan domain.IdentityEvent, error) {
	events := make(chan domain.IdentityEvent, 4)

	go g.watch(ctx, events)

	return events, nil
}

func (g *CredentialGateway) watch(ctx context.Context, events chan<- domain.IdentityEvent) {
	defer close(events)

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	emitted := false
	var lastID *domain.Identity

	poll := func() {
		identity, ok := g.observe(ctx, !emitted)
		if !ok {
			return
		}
		if emitted && sameIdentity(lastID, identity) {
			return
		}
		select {
		case events <- domain.IdentityEvent{Identity: identity}:
			emitted = true
			lastID = identity
		case <-ctx.Done():
		}
	}

	poll()

	for {
		select {
		case <-ctx.Done():
			return
		case <-g.kick:
			poll()
		case <-ticker.C:
			poll()
		}
	}
}

// observe resolves the current identity from the held token. The
// second return is false when a transient provider failure should be
// skipped rather than interpreted as a sign-out; before the first
// emission any failure degrades to "treat as unauthenticated" so the
// session still settles.
func (g *CredentialGateway) observe(ctx context.Context, firstEmission bool) (*domain.Identity, bool) {
	g.mu.Lock()
	token := g.token
	g.mu.Unlock()

	if token == "" {
		return nil, true
	}

	sess, err := g.provider.Session(ctx, token)
	switch {
	case err == nil:
		identity := sess.Identity
		return &identity, true
	case errors.Is(err, domain.ErrNoSession):
		g.clearToken(token)
		return nil, true
	default:
		g.logger.Warn("session observation failed", "error", err)
		if firstEmission {
			return nil, true
		}
		return nil, false
	}
}

func (g *CredentialGateway) setToken(token string) {
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
	g.nudge()
}

// clearToken drops the token only if it is still the one that failed;
// a sign-in may have replaced it while the poll was in flight.
func (g *CredentialGateway) clearToken(stale string) {
	g.mu.Lock()
	if g.token == stale {
		g.token = ""
	}
	g.mu.Unlock()
}

func (g *CredentialGateway) nudge() {
	select {
	case g.kick <- struct{}{}:
	default:
	}
}

func sameIdentity(a, b *domain.Identity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
