package content

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Rotator advances the hero banner slide on a fixed interval so every visitor
// sees the same slide at the same moment. Current returns the active index.
type Rotator struct {
	repo     ContentRepository
	interval time.Duration

	mu    sync.RWMutex
	index int
}

func NewRotator(repo ContentRepository, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = 6 * time.Second
	}
	return &Rotator{repo: repo, interval: interval}
}

// Start runs the rotation loop until ctx is cancelled.
func (r *Rotator) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Debug("banner rotator stopped")
				return
			case <-ticker.C:
				r.advance(ctx)
			}
		}
	}()
}

func (r *Rotator) advance(ctx context.Context) {
	banners := r.repo.Banners(ctx)
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(banners) == 0 {
		r.index = 0
		return
	}
	r.index = (r.index + 1) % len(banners)
}

// Current returns the active slide index, clamped to the banner count in case
// the catalog shrank since the last tick.
func (r *Rotator) Current(ctx context.Context) int {
	banners := r.repo.Banners(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(banners) == 0 {
		return 0
	}
	return r.index % len(banners)
}
