package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports engine and cache events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBuildStart(_ context.Context, policy string, height int) {
	h.logger.Debug("build started", "policy", policy, "height", height)
}

func (h *logHooks) OnBuildComplete(_ context.Context, policy string, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "policy", policy, "error", err, "duration", d)
		return
	}
	h.logger.Debug("build finished", "policy", policy, "nodes", nodes, "duration", d)
}

func (h *logHooks) OnWalkComplete(_ context.Context, steps int, d time.Duration, err error) {
	h.logger.Debug("walks finished", "paths", steps, "duration", d, "error", err)
}

func (h *logHooks) OnCheckComplete(_ context.Context, feasible bool, d time.Duration, err error) {
	h.logger.Debug("order check", "feasible", feasible, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache write", "type", keyType, "bytes", size)
}
