package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"stayin/app/domain"

	"github.com/google/uuid"
)

// ProfileStore is the key-value document store holding the
// authoritative role and profile fields, keyed by identity id.
type ProfileStore interface {
	// Get returns domain.ErrProfileNotFound for absent ids.
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// Set writes the whole profile document under id.
	Set(ctx context.Context, id uuid.UUID, profile *domain.Profile) error

	// Update merges the non-nil patch fields into the stored document
	// and stamps updated_at. Returns the merged document.
	Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error)
}
