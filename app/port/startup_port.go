package port

//go:generate mockgen -source=startup_port.go -destination=../mocks/mock_startup_port.go

import (
	"context"

	"stayin/app/domain"
)

// LocalStore is the on-device cache opened during startup. It never
// holds session state; the session is re-resolved from the credential
// provider on every process start.
type LocalStore interface {
	Open(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	CacheAssetManifest(ctx context.Context, manifest *domain.AssetManifest) error
	AssetManifest(ctx context.Context) (*domain.AssetManifest, error)
}

// AssetLoader preloads the fonts and image packs named by the asset
// manifest before the splash surface is dismissed.
type AssetLoader interface {
	Preload(ctx context.Context) (*domain.AssetManifest, error)
}

// ReadinessReader exposes the startup join to the transport layer.
type ReadinessReader interface {
	Gate() domain.ReadinessGate
	Ready() bool
	Notices() []domain.StartupNotice
}
