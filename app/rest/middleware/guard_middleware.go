package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"stayin/app/domain"
	"stayin/app/metrics"
	"stayin/app/port"
	"stayin/app/usecase"
)

// WelcomePath is the unauthenticated entry surface guards redirect to.
const WelcomePath = "/v1/welcome"

// GuardMiddleware protects each role-scoped route tree independently
// of the role router: a deep link, back-navigation or stale cached
// route can reach a tree without passing through the router, and the
// guard must then produce the same decision the router would.
type GuardMiddleware struct {
	sessions port.SessionReader
	logger   *slog.Logger
}

// NewGuardMiddleware creates a new guard middleware
func NewGuardMiddleware(sessions port.SessionReader, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		sessions: sessions,
		logger:   logger.With("component", "guard_middleware"),
	}
}

// RequireTree admits a request iff the role router would route the
// current snapshot to exactly this tree. Sharing usecase.RouteFor is
// what makes the guard and the router provably consistent.
func (m *GuardMiddleware) RequireTree(tree domain.Destination) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := m.sessions.Snapshot()

			if snap.Loading {
				// Indeterminate: must not redirect, or the guard and
				// the router could race and issue conflicting
				// redirects. Tell the shell to retry shortly.
				c.Response().Header().Set("Retry-After", "1")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session resolving")
			}

			if usecase.RouteFor(snap) != tree {
				metrics.RecordGuardDenial(string(tree))
				m.logger.Warn("guard denied entry",
					"tree", tree,
					"authenticated", snap.Authenticated(),
					"role_resolved", snap.RoleResolved())
				return c.Redirect(http.StatusSeeOther, WelcomePath)
			}

			return next(c)
		}
	}
}
