package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"stayin/app/domain"
)

const (
	assetManifestKey = "stayin:asset_manifest"
	manifestTTL      = 24 * time.Hour
	openTimeout      = 5 * time.Second
)

// LocalStore is the redis-backed local cache. It holds screen-facing
// data such as the preloaded asset manifest; session state is never
// cached here and is re-resolved from the credential provider on every
// process start.
type LocalStore struct {
	url    string
	logger *slog.Logger
	client *redis.Client
}

// NewLocalStore creates a closed store; Open establishes the
// connection as one of the startup tasks.
func NewLocalStore(url string, logger *slog.Logger) *LocalStore {
	return &LocalStore{
		url:    url,
		logger: logger.With("component", "local_store"),
	}
}

// Open connects and pings the cache. Part of the readiness join.
func (s *LocalStore) Open(ctx context.Context) error {
	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("invalid local store url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to open local store: %w", err)
	}

	s.client = client
	s.logger.Info("local store opened")
	return nil
}

// Ping checks the cache connection.
func (s *LocalStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return domain.ErrLocalStoreClosed
	}
	return s.client.Ping(ctx).Err()
}

// Close tears down the connection.
func (s *LocalStore) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	s.logger.Info("local store closed")
	return err
}

// CacheAssetManifest stores the preloaded manifest.
func (s *LocalStore) CacheAssetManifest(ctx context.Context, manifest *domain.AssetManifest) error {
	if s.client == nil {
		return domain.ErrLocalStoreClosed
	}

	raw, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode asset manifest: %w", err)
	}

	if err := s.client.Set(ctx, assetManifestKey, raw, manifestTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache asset manifest: %w", err)
	}

	s.logger.Debug("asset manifest cached", "version", manifest.Version)
	return nil
}

// AssetManifest returns the cached manifest, or domain.ErrCacheMiss.
func (s *LocalStore) AssetManifest(ctx context.Context) (*domain.AssetManifest, error) {
	if s.client == nil {
		return nil, domain.ErrLocalStoreClosed
	}

	raw, err := s.client.Get(ctx, assetManifestKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	var manifest domain.AssetManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode cached asset manifest: %w", err)
	}

	return &manifest, nil
}
