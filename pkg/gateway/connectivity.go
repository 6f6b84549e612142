package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Probe caches upstream reachability so the per-request connectivity
// pre-check does not cost a round trip every time.
type Probe struct {
	mu        sync.Mutex
	client    *http.Client
	healthURL string
	ttl       time.Duration
	online    bool
	checkedAt time.Time
}

func NewProbe(healthURL string, ttl time.Duration) *Probe {
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return &Probe{
		client:    &http.Client{Timeout: 2 * time.Second},
		healthURL: healthURL,
		ttl:       ttl,
		online:    true, // assume reachable until a check says otherwise
	}
}

// Online answers from cache when the last check is fresh, probing again
// otherwise.
func (p *Probe) Online(ctx context.Context) bool {
	p.mu.Lock()
	fresh := time.Since(p.checkedAt) < p.ttl
	online := p.online
	p.mu.Unlock()

	if fresh {
		return online
	}
	return p.Check(ctx)
}

// Check probes the upstream health endpoint and refreshes the cache.
func (p *Probe) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.healthURL, nil)
	if err != nil {
		p.record(false)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.record(false)
		return false
	}
	resp.Body.Close()

	ok := resp.StatusCode == http.StatusOK
	p.record(ok)
	return ok
}

// MarkOffline forces the cached state offline, used when a live request
// fails at the transport layer.
func (p *Probe) MarkOffline() {
	p.record(false)
}

func (p *Probe) record(online bool) {
	p.mu.Lock()
	p.online = online
	p.checkedAt = time.Now()
	p.mu.Unlock()
}
