package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"stayin/app/domain"
)

// ProfileRepository stores profile documents in a key-value table: one
// JSONB document per identity id.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Get fetches the profile document keyed by id.
func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT doc FROM profiles WHERE id = $1`

	var doc []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to query profile %s: %w", id, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile document %s: %w", id, err)
	}

	return &profile, nil
}

// Set writes the whole profile document under id, updating in place if
// the key already exists.
func (r *ProfileRepository) Set(ctx context.Context, id uuid.UUID, profile *domain.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile document: %w", err)
	}

	query := `
		INSERT INTO profiles (id, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`

	now := time.Now()
	if _, err := r.db.Exec(ctx, query, id, doc, now, now); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", id, err)
	}

	r.logger.Debug("profile document stored", "profile_id", id)
	return nil
}

// Update merges the non-nil patch fields into the stored document and
// stamps updated_at, returning the merged document.
func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error) {
	fields, err := patchFields(patch)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE profiles
		SET doc = doc || $2::jsonb, updated_at = $3
		WHERE id = $1
		RETURNING doc`

	var doc []byte
	err = r.db.QueryRow(ctx, query, id, fields, time.Now()).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile %s: %w", id, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode merged profile document %s: %w", id, err)
	}

	r.logger.Debug("profile document merged", "profile_id", id)
	return &profile, nil
}

// patchFields encodes the patch for the JSONB merge, stamping
// updated_at inside the document as well.
func patchFields(patch domain.ProfilePatch) ([]byte, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile patch: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to rebuild profile patch: %w", err)
	}
	fields["updated_at"] = time.Now().Format(time.RFC3339Nano)

	return json.Marshal(fields)
}
