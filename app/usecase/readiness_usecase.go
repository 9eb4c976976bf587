package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"stayin/app/domain"
	"stayin/app/port"
)

// ReadinessUsecase joins the independent startup tasks (session
// resolution, local store open, asset preload) into one gate. It is a
// join, not a pipeline: the tasks settle in any order. The ready
// transition fires the one-shot callback exactly once per process
// lifetime; task failures settle their mark with a non-blocking notice
// instead of holding the gate shut.
type ReadinessUsecase struct {
	logger  *slog.Logger
	onReady func()

	mu      sync.Mutex
	gate    domain.ReadinessGate
	notices []domain.StartupNotice
	fired   bool
	ready   chan struct{}
}

// NewReadinessUsecase creates the gate with all marks unset. onReady is
// the one-shot splash dismissal; it may be nil.
func NewReadinessUsecase(onReady func(), logger *slog.Logger) *ReadinessUsecase {
	return &ReadinessUsecase{
		logger:  logger.With("component", "readiness_usecase"),
		onReady: onReady,
		ready:   make(chan struct{}),
	}
}

// StartupTasks are the three asynchronous tasks started at process
// entry whose completion the gate joins.
type StartupTasks struct {
	// SessionSettled is closed when the session machine's first
	// resolution attempt completes, success or failure.
	SessionSettled <-chan struct{}

	LocalStore port.LocalStore
	Assets     port.AssetLoader
}

// Run launches the startup tasks and marks each as it settles. It
// returns once all three have settled; by then Ready is true.
func (u *ReadinessUsecase) Run(ctx context.Context, tasks StartupTasks) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-tasks.SessionSettled:
		case <-gctx.Done():
			u.addNotice("session", "session resolution interrupted")
		}
		u.MarkSessionResolved()
		return nil
	})

	g.Go(func() error {
		if err := tasks.LocalStore.Open(gctx); err != nil {
			u.logger.Error("local store open failed", "error", err)
			u.addNotice("local_store", "local cache unavailable: "+err.Error())
		}
		u.MarkLocalStoreOpen()
		return nil
	})

	g.Go(func() error {
		manifest, err := tasks.Assets.Preload(gctx)
		if err != nil {
			u.logger.Error("asset preload failed", "error", err)
			u.addNotice("assets", "asset preload failed: "+err.Error())
			u.MarkAssetsLoaded()
			return nil
		}
		if err := tasks.LocalStore.CacheAssetManifest(gctx, manifest); err != nil {
			u.logger.Warn("caching asset manifest failed", "error", err)
		}
		u.MarkAssetsLoaded()
		return nil
	})

	return g.Wait()
}

// MarkSessionResolved records the first settle of session resolution.
// Monotonic: repeated calls are no-ops.
func (u *ReadinessUsecase) MarkSessionResolved() {
	u.mark(func(g *domain.ReadinessGate) { g.SessionResolved = true }, "session_resolved")
}

// MarkLocalStoreOpen records local store initialization settling.
func (u *ReadinessUsecase) MarkLocalStoreOpen() {
	u.mark(func(g *domain.ReadinessGate) { g.LocalStoreOpen = true }, "local_store_open")
}

// MarkAssetsLoaded records asset preloading settling.
func (u *ReadinessUsecase) MarkAssetsLoaded() {
	u.mark(func(g *domain.ReadinessGate) { g.AssetsLoaded = true }, "assets_loaded")
}

// Gate returns the current readiness gate value.
func (u *ReadinessUsecase) Gate() domain.ReadinessGate {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.gate
}

// Ready reports whether every startup task has settled.
func (u *ReadinessUsecase) Ready() bool {
	return u.Gate().Ready()
}

// ReadyCh is closed once on the false-to-true transition of the gate.
func (u *ReadinessUsecase) ReadyCh() <-chan struct{} {
	return u.ready
}

// Notices returns the non-blocking startup failure notices.
func (u *ReadinessUsecase) Notices() []domain.StartupNotice {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]domain.StartupNotice, len(u.notices))
	copy(out, u.notices)
	return out
}

func (u *ReadinessUsecase) mark(set func(*domain.ReadinessGate), name string) {
	u.mu.Lock()
	set(&u.gate)
	fire := u.gate.Ready() && !u.fired
	if fire {
		u.fired = true
	}
	u.mu.Unlock()

	u.logger.Info("startup task settled", "task", name)

	if fire {
		close(u.ready)
		u.logger.Info("✅ all startup tasks settled, dismissing splash")
		if u.onReady != nil {
			u.onReady()
		}
	}
}

func (u *ReadinessUsecase) addNotice(task, message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.notices = append(u.notices, domain.StartupNotice{
		Task:       task,
		Message:    message,
		OccurredAt: time.Now(),
	})
}
