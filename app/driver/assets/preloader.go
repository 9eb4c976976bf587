package assets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gopkg.in/yaml.v3"

	"stayin/app/domain"
)

const (
	maxManifestSize = 1 << 20 // 1 MiB
	requestTimeout  = 30 * time.Second
)

// Preloader fetches the YAML asset manifest and warms each asset it
// names. Its completion is one of the startup tasks the readiness
// gate joins.
type Preloader struct {
	manifestURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewPreloader creates a new asset preloader.
func NewPreloader(manifestURL string, logger *slog.Logger) *Preloader {
	return &Preloader{
		manifestURL: manifestURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With("component", "asset_preloader"),
	}
}

// Preload fetches and validates the manifest, then warms each asset.
// Individual asset failures are logged but do not fail the preload;
// a manifest fetch or parse failure does.
func (p *Preloader) Preload(ctx context.Context) (*domain.AssetManifest, error) {
	manifest, err := p.fetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	warmed := 0
	for _, ref := range manifest.Refs() {
		if err := p.warm(ctx, ref); err != nil {
			p.logger.Warn("asset warm-up failed", "asset", ref.Name, "error", err)
			continue
		}
		warmed++
	}

	p.logger.Info("asset preload completed",
		"version", manifest.Version,
		"assets", len(manifest.Refs()),
		"warmed", warmed)

	return manifest, nil
}

func (p *Preloader) fetchManifest(ctx context.Context) (*domain.AssetManifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset manifest fetch returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	var manifest domain.AssetManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid asset manifest: %w", err)
	}

	return &manifest, nil
}

// warm fetches an asset and discards the body, priming any caches
// between the client and the CDN.
func (p *Preloader) warm(ctx context.Context, ref domain.AssetRef) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.URL, nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("asset fetch returned %d", resp.StatusCode)
	}

	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
