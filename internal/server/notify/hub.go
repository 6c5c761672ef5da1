// Package notify keeps the set of observers interested in data changes and
// fans a refresh out to them after every successful mutation.
package notify

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/sos/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Observer receives a refresh notification. An error means the observer is
// gone and it is dropped from the hub. Implementations must be comparable;
// pointer receivers are the usual choice.
type Observer interface {
	Notify(ctx context.Context) error
}

// Hub is a registry of observers. It is safe for concurrent use.
type Hub struct {
	mu        sync.Mutex
	observers []Observer

	logger  logging.Logger
	metrics *metrics
}

// NewHub returns an empty hub. Metrics are registered with reg unless it is nil.
func NewHub(logger logging.Logger, reg prometheus.Registerer) *Hub {
	return &Hub{
		logger:  logger.With("module", "notify"),
		metrics: newMetrics(reg),
	}
}

// Add registers o. Adding an observer twice has no effect.
func (h *Hub) Add(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if slices.Contains(h.observers, o) {
		return
	}
	h.observers = append(h.observers, o)
	h.metrics.observers.Set(float64(len(h.observers)))
}

// Remove unregisters o. Removing an unknown observer has no effect.
func (h *Hub) Remove(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(o)
}

func (h *Hub) remove(o Observer) bool {
	i := slices.Index(h.observers, o)
	if i < 0 {
		return false
	}
	h.observers = slices.Delete(h.observers, i, i+1)
	h.metrics.observers.Set(float64(len(h.observers)))
	return true
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Broadcast notifies every observer registered when the call starts.
// Observers added meanwhile wait for the next round. Failed observers are
// removed and logged; the error never reaches the caller.
func (h *Hub) Broadcast(ctx context.Context) {
	h.mu.Lock()
	snapshot := slices.Clone(h.observers)
	h.mu.Unlock()

	h.metrics.broadcasts.Inc()

	for _, o := range snapshot {
		if err := o.Notify(ctx); err != nil {
			h.mu.Lock()
			pruned := h.remove(o)
			h.mu.Unlock()

			if pruned {
				h.metrics.pruned.Inc()
				h.logger.Warn(ctx, "observer dropped", "error", err)
			}
			continue
		}
		h.metrics.delivered.Inc()
	}
}
