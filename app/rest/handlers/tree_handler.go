package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"stayin/app/domain"
	"stayin/app/port"
)

// TreeHandler serves the role-specific navigation trees. Every route it
// serves sits behind the guard middleware for its tree, so by the time
// a request lands here the snapshot has already been re-validated.
type TreeHandler struct {
	sessions port.SessionReader
	logger   *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(sessions port.SessionReader, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// TenantDashboard returns the tenant tree entry surface
// @Summary Tenant dashboard
// @Tags tenant
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /v1/tenant/dashboard [get]
func (h *TreeHandler) TenantDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard(domain.DestinationTenant, []string{
		"search_listings",
		"saved_listings",
		"booking_requests",
		"messages",
	}))
}

// LandlordDashboard returns the landlord tree entry surface
// @Summary Landlord dashboard
// @Tags landlord
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /v1/landlord/dashboard [get]
func (h *TreeHandler) LandlordDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard(domain.DestinationLandlord, []string{
		"my_properties",
		"publish_listing",
		"booking_requests",
		"kyc_status",
		"messages",
	}))
}

// AdminDashboard returns the admin tree entry surface
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /v1/admin/dashboard [get]
func (h *TreeHandler) AdminDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard(domain.DestinationAdmin, []string{
		"moderation_queue",
		"kyc_reviews",
		"user_management",
		"platform_metrics",
	}))
}

func (h *TreeHandler) dashboard(tree domain.Destination, sections []string) DashboardResponse {
	snapshot := h.sessions.Snapshot()

	resp := DashboardResponse{
		Tree:     tree,
		Sections: sections,
	}
	if snapshot.Profile != nil {
		resp.Profile = snapshot.Profile
	}
	return resp
}

// Response types

type DashboardResponse struct {
	Tree     domain.Destination `json:"tree"`
	Sections []string           `json:"sections"`
	Profile  *domain.Profile    `json:"profile,omitempty"`
}
