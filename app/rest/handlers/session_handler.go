package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"stayin/app/domain"
	"stayin/app/port"
	"stayin/app/usecase"
	apperrors "stayin/app/utils/errors"
)

// SessionHandler exposes the session snapshot and navigation state
type SessionHandler struct {
	sessions  port.SessionUsecase
	router    *usecase.Router
	readiness port.ReadinessReader
	logger    *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions port.SessionUsecase, router *usecase.Router, readiness port.ReadinessReader, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		router:    router,
		readiness: readiness,
		logger:    logger,
	}
}

// GetSession returns the current session snapshot
// @Summary Get session snapshot
// @Description Return the merged identity/profile/loading view
// @Tags session
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /v1/session [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	snapshot := h.sessions.Snapshot()
	return c.JSON(http.StatusOK, snapshot)
}

// Refresh re-fetches the profile for the current identity
// @Summary Refresh session
// @Description Re-fetch the profile document without touching authentication state
// @Tags session
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 502 {object} apperrors.AppError
// @Router /v1/session/refresh [post]
func (h *SessionHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.sessions.Refresh(ctx); err != nil {
		h.logger.Error("session refresh failed", "error", err)
		appErr := apperrors.FromDomain(err)
		return c.JSON(appErr.StatusCode, appErr)
	}

	return c.JSON(http.StatusOK, h.sessions.Snapshot())
}

// Home returns the navigation destination for the current snapshot
// @Summary Resolve home destination
// @Description Map the current snapshot to a top-level navigation target
// @Tags session
// @Produce json
// @Success 200 {object} HomeResponse
// @Router /v1/home [get]
func (h *SessionHandler) Home(c echo.Context) error {
	snapshot := h.sessions.Snapshot()
	dest := h.router.Decide()

	return c.JSON(http.StatusOK, HomeResponse{
		Destination: dest,
		Loading:     snapshot.Loading,
		SplashDone:  h.readiness.Ready(),
	})
}

// Welcome returns the unauthenticated entry surface
// @Summary Welcome surface
// @Description Entry point for visitors without a resolved account
// @Tags session
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router /v1/welcome [get]
func (h *SessionHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to StayIN",
		Actions: []string{"login", "register", "recovery"},
	})
}

// StartupNotices returns non-blocking notices from startup
// @Summary Startup notices
// @Description Failures from startup tasks that settled without blocking launch
// @Tags session
// @Produce json
// @Success 200 {object} NoticesResponse
// @Router /v1/startup/notices [get]
func (h *SessionHandler) StartupNotices(c echo.Context) error {
	notices := h.readiness.Notices()
	if notices == nil {
		notices = []domain.StartupNotice{}
	}
	return c.JSON(http.StatusOK, NoticesResponse{Notices: notices})
}

// Response types

type HomeResponse struct {
	Destination domain.Destination `json:"destination"`
	Loading     bool               `json:"loading"`
	SplashDone  bool               `json:"splash_done"`
}

type WelcomeResponse struct {
	Message string   `json:"message"`
	Actions []string `json:"actions"`
}

type NoticesResponse struct {
	Notices []domain.StartupNotice `json:"notices"`
}
