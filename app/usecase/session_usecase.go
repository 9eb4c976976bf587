package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"stayin/app/domain"
	"stayin/app/port"
)

// defaultFetchTimeout bounds a single profile resolution. There is no
// automatic retry; Refresh is the recovery path.
const defaultFetchTimeout = 10 * time.Second

// SessionUsecase owns the session state machine:
//
//	Uninitialized -> Resolving -> {Authenticated(profile), Unauthenticated}
//
// One goroutine (Run) consumes the identity-change stream and is the
// only writer of the snapshot. The snapshot is replaced as a whole
// value; a per-event generation counter discards profile fetches that
// were superseded by a newer identity change.
type SessionUsecase struct {
	creds        port.CredentialService
	profiles     port.ProfileStore
	logger       *slog.Logger
	fetchTimeout time.Duration

	snapshot atomic.Pointer[domain.Snapshot]

	mu          sync.Mutex
	generation  uint64
	watchers    map[int]chan domain.Snapshot
	nextWatcher int

	settleOnce sync.Once
	settled    chan struct{}
}

// NewSessionUsecase creates the session state machine in its
// uninitialized (loading) state. Run must be called to start resolving.
func NewSessionUsecase(
	creds port.CredentialService,
	profiles port.ProfileStore,
	fetchTimeout time.Duration,
	logger *slog.Logger,
) *SessionUsecase {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}

	u := &SessionUsecase{
		creds:        creds,
		profiles:     profiles,
		logger:       logger.With("component", "session_usecase"),
		fetchTimeout: fetchTimeout,
		watchers:     make(map[int]chan domain.Snapshot),
		settled:      make(chan struct{}),
	}
	u.snapshot.Store(&domain.Snapshot{Loading: true})
	return u
}

// Run subscribes to the identity-change stream and drives the state
// machine until ctx is cancelled. The subscription is long-lived for
// the process lifetime.
func (u *SessionUsecase) Run(ctx context.Context) error {
	events, err := u.creds.Subscribe(ctx)
	if err != nil {
		return err
	}

	u.logger.Info("session resolution started")

	for ev := range events {
		u.handleIdentityEvent(ctx, ev)
	}

	u.logger.Info("identity stream closed, session machine stopping")
	return ctx.Err()
}

// Snapshot returns the current snapshot. Safe for concurrent use.
func (u *SessionUsecase) Snapshot() domain.Snapshot {
	return *u.snapshot.Load()
}

// Settled is closed after the first resolution attempt completes,
// success or failure. The readiness join waits on it.
func (u *SessionUsecase) Settled() <-chan struct{} {
	return u.settled
}

// Watch returns a channel delivering snapshot updates. The current
// snapshot is delivered first; intermediate updates may be coalesced
// so the receiver always sees the latest value.
func (u *SessionUsecase) Watch(ctx context.Context) <-chan domain.Snapshot {
	ch := make(chan domain.Snapshot, 1)
	ch <- u.Snapshot()

	u.mu.Lock()
	id := u.nextWatcher
	u.nextWatcher++
	u.watchers[id] = ch
	u.mu.Unlock()

	go func() {
		<-ctx.Done()
		u.mu.Lock()
		delete(u.watchers, id)
		u.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Refresh re-fetches the profile for the current identity without
// altering authentication state. A no-op when signed out. Used after
// external profile edits to pull fresh role and verification data.
func (u *SessionUsecase) Refresh(ctx context.Context) error {
	snap := u.Snapshot()
	if snap.Identity == nil {
		return nil
	}

	u.mu.Lock()
	gen := u.generation
	u.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	profile, err := u.profiles.Get(fetchCtx, snap.Identity.ID)

	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != u.generation {
		// Identity changed while the refresh was in flight; the result
		// no longer corresponds to the current identity.
		u.logger.Warn("discarding superseded refresh result", "identity_id", snap.Identity.ID)
		return nil
	}

	switch {
	case err == nil:
		u.publishLocked(domain.Snapshot{Identity: snap.Identity, Profile: profile})
		u.logger.Info("profile refreshed",
			"identity_id", snap.Identity.ID,
			"role", profile.Role)
		return nil
	case errors.Is(err, domain.ErrProfileNotFound):
		// Recoverable inconsistency: identity stays, profile cleared.
		u.publishLocked(domain.Snapshot{Identity: snap.Identity})
		u.logger.Warn("profile absent on refresh", "identity_id", snap.Identity.ID)
		return nil
	default:
		return err
	}
}

// SignOut revokes the provider session and clears the local snapshot
// synchronously. The identity stream will also observe the sign-out,
// but consumers must never see stale authenticated state in between.
func (u *SessionUsecase) SignOut(ctx context.Context) error {
	err := u.creds.SignOut(ctx)

	u.mu.Lock()
	u.generation++ // any in-flight fetch is now stale
	u.publishLocked(domain.Snapshot{})
	u.mu.Unlock()
	u.markSettled()

	u.logger.Info("signed out, local session state cleared", "provider_err", err != nil)
	return err
}

func (u *SessionUsecase) handleIdentityEvent(ctx context.Context, ev domain.IdentityEvent) {
	u.mu.Lock()
	u.generation++
	gen := u.generation

	if ev.Identity == nil {
		// Identity and profile are cleared in the same atomic update;
		// no stale-profile leakage across sessions.
		u.publishLocked(domain.Snapshot{})
		u.mu.Unlock()
		u.markSettled()
		u.logger.Info("identity absent, session unauthenticated")
		return
	}

	identity := ev.Identity
	// Identity is present but its role is not yet known: loading stays
	// true so no role tree can be flashed before resolution.
	u.publishLocked(domain.Snapshot{Identity: identity, Loading: true})
	u.mu.Unlock()

	u.logger.Info("identity changed, resolving profile", "identity_id", identity.ID)

	go u.resolveProfile(ctx, gen, identity)
}

func (u *SessionUsecase) resolveProfile(ctx context.Context, gen uint64, identity *domain.Identity) {
	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	profile, err := u.profiles.Get(fetchCtx, identity.ID)

	u.mu.Lock()
	if gen != u.generation {
		u.mu.Unlock()
		u.logger.Warn("discarding superseded profile resolution",
			"identity_id", identity.ID,
			"generation", gen)
		return
	}

	switch {
	case err == nil:
		u.publishLocked(domain.Snapshot{Identity: identity, Profile: profile})
		u.mu.Unlock()
		u.logger.Info("✅ session authenticated",
			"identity_id", identity.ID,
			"role", profile.Role)
	case errors.Is(err, domain.ErrProfileNotFound):
		// A write may have raced the read (partial sign-up window).
		// Identity remains present; routing treats this as
		// unauthenticated rather than guessing a role.
		u.publishLocked(domain.Snapshot{Identity: identity})
		u.mu.Unlock()
		u.logger.Warn("profile absent for identity", "identity_id", identity.ID)
	default:
		u.publishLocked(domain.Snapshot{Identity: identity})
		u.mu.Unlock()
		u.logger.Error("profile resolution failed",
			"identity_id", identity.ID,
			"error", err)
	}

	u.markSettled()
}

// publishLocked replaces the snapshot as a whole value and fans the
// update out to watchers. Callers hold u.mu.
func (u *SessionUsecase) publishLocked(snap domain.Snapshot) {
	u.snapshot.Store(&snap)

	for _, ch := range u.watchers {
		select {
		case ch <- snap:
		default:
			// Watcher lags: drop its stale value, keep only the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (u *SessionUsecase) markSettled() {
	u.settleOnce.Do(func() { close(u.settled) })
}
