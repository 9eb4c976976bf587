package usecase

import (
	"context"
	"log/slog"
	"sync"

	"stayin/app/domain"
	"stayin/app/metrics"
	"stayin/app/port"
)

// RouteFor computes the single allowed top-level destination for a
// snapshot. Pure function; the per-root guards reuse it so the router
// and the guards cannot disagree about any snapshot.
//
//   - loading: no decision yet (DestinationNone), avoids flicker
//   - identity absent: the welcome surface
//   - identity present, profile absent: welcome (fail-safe; never
//     route into a role tree without a resolved role)
//   - otherwise: the tree matching the profile role, with unknown
//     role values falling back to the tenant tree
func RouteFor(s domain.Snapshot) domain.Destination {
	if s.Loading {
		return domain.DestinationNone
	}
	if s.Identity == nil || s.Profile == nil {
		return domain.DestinationWelcome
	}
	return domain.RoleTree(s.Profile.Role)
}

// Router re-evaluates the allowed destination on every snapshot change
// and records redirects. Redirecting to the destination already current
// is a no-op, not a navigation loop.
type Router struct {
	sessions port.SessionReader
	logger   *slog.Logger

	mu      sync.Mutex
	current domain.Destination
}

// NewRouter creates a role router over the session read surface.
func NewRouter(sessions port.SessionReader, logger *slog.Logger) *Router {
	return &Router{
		sessions: sessions,
		logger:   logger.With("component", "role_router"),
	}
}

// Decide returns the destination for the current snapshot.
func (r *Router) Decide() domain.Destination {
	return RouteFor(r.sessions.Snapshot())
}

// Current returns the destination of the last applied redirect.
func (r *Router) Current() domain.Destination {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Run watches the session snapshot and applies redirects until ctx is
// cancelled.
func (r *Router) Run(ctx context.Context) {
	for snap := range r.sessions.Watch(ctx) {
		r.apply(RouteFor(snap))
	}
}

func (r *Router) apply(dest domain.Destination) {
	if dest == domain.DestinationNone {
		// Still loading: hold position, no redirect decision.
		return
	}

	r.mu.Lock()
	if dest == r.current {
		r.mu.Unlock()
		return
	}
	from := r.current
	r.current = dest
	r.mu.Unlock()

	metrics.RecordRedirect(string(dest))
	r.logger.Info("redirect", "from", from, "to", dest)
}
