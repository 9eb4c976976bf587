package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"stayin/app/domain"
	"stayin/app/port"
)

// ProfileGateway is the anti-corruption layer over the profile
// document repository. It normalizes role values on the way out so a
// corrupted document can never surface an unusable role to routing.
type ProfileGateway struct {
	repo   port.ProfileStore
	logger *slog.Logger
}

// NewProfileGateway creates a new ProfileGateway.
func NewProfileGateway(repo port.ProfileStore, logger *slog.Logger) *ProfileGateway {
	return &ProfileGateway{
		repo:   repo,
		logger: logger.With("component", "profile_gateway"),
	}
}

// Get fetches the profile document for an identity id.
func (g *ProfileGateway) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := g.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !profile.Role.Valid() {
		g.logger.Warn("profile carries unknown role, normalizing",
			"profile_id", id,
			"role", profile.Role)
	}
	return profile, nil
}

// Set writes the whole profile document.
func (g *ProfileGateway) Set(ctx context.Context, id uuid.UUID, profile *domain.Profile) error {
	if profile.ID != id {
		return fmt.Errorf("profile id %s does not match key %s", profile.ID, id)
	}
	if err := g.repo.Set(ctx, id, profile); err != nil {
		return fmt.Errorf("failed to write profile document: %w", err)
	}

	g.logger.Info("profile document written", "profile_id", id, "role", profile.Role)
	return nil
}

// Update merges a partial patch into the stored document.
func (g *ProfileGateway) Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error) {
	profile, err := g.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile document: %w", err)
	}

	g.logger.Info("profile document updated", "profile_id", id)
	return profile, nil
}
