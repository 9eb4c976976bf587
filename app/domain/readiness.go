package domain

import "time"

// ReadinessGate is the join of the independent startup tasks that must
// all settle before the shell's blocking splash surface is dismissed.
// Each field transitions false to true exactly once per process
// lifetime and never resets.
type ReadinessGate struct {
	SessionResolved bool `json:"session_resolved"`
	LocalStoreOpen  bool `json:"local_store_open"`
	AssetsLoaded    bool `json:"assets_loaded"`
}

// Ready reports whether every startup task has settled.
func (g ReadinessGate) Ready() bool {
	return g.SessionResolved && g.LocalStoreOpen && g.AssetsLoaded
}

// StartupNotice records a non-fatal startup task failure. The task
// still counts as settled for the readiness join; the notice is shown
// to the user instead of blocking the splash forever.
type StartupNotice struct {
	Task       string    `json:"task"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
