// Package ledger keeps the rolling aggregate of optimization outcomes:
// counts, running average improvement, per-style and per-platform usage
// histograms, and the accumulated time-saved estimate.
package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/promptsmith/promptsmith/internal/errors"
	"github.com/promptsmith/promptsmith/internal/store"
)

// storeKey is the single durable record the ledger reads and writes.
const storeKey = "analytics"

// Stats is the durable rolling aggregate. styleUsage and platformUsage
// counts each sum to Optimizations.
type Stats struct {
	Optimizations      int                `json:"optimizations"`
	AverageImprovement float64            `json:"average_improvement"`
	StyleUsage         map[string]int     `json:"style_usage"`
	PlatformUsage      map[string]int     `json:"platform_usage"`
	TimeSavings        float64            `json:"time_savings"`
}

func zeroStats() Stats {
	return Stats{
		StyleUsage:    map[string]int{},
		PlatformUsage: map[string]int{},
	}
}

// Entry is one optimization outcome to record.
type Entry struct {
	Style       string
	Platform    string
	Improvement float64
	TimeSaved   float64
}

// Ledger aggregates optimization outcomes against a durable store.
// In-process callers are serialized by a mutex; the store itself is
// read-modify-write with last-write-wins across processes, a documented
// trade-off for this low-stakes, user-facing statistic.
type Ledger struct {
	store store.Store

	mu     sync.Mutex
	cached *Stats
}

// New creates a ledger backed by the given store. The durable record is
// loaded lazily on first use; first use ever starts from zero values.
func New(s store.Store) *Ledger {
	return &Ledger{store: s}
}

// Record folds one optimization outcome into the aggregate and persists
// it. A persistence failure is returned as ErrLedgerPersist; the in-memory
// aggregate is already updated, so callers may log and continue.
func (l *Ledger) Record(ctx context.Context, e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats, err := l.load(ctx)
	if err != nil {
		return err
	}

	stats.Optimizations++
	// Incremental mean: avg += (x - avg) / n
	stats.AverageImprovement += (e.Improvement - stats.AverageImprovement) / float64(stats.Optimizations)
	stats.StyleUsage[e.Style]++
	stats.PlatformUsage[e.Platform]++
	stats.TimeSavings += e.TimeSaved

	return l.persist(ctx, stats)
}

// Snapshot returns a copy of the current aggregate.
func (l *Ledger) Snapshot(ctx context.Context) (Stats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats, err := l.load(ctx)
	if err != nil {
		return Stats{}, err
	}

	out := *stats
	out.StyleUsage = make(map[string]int, len(stats.StyleUsage))
	for k, v := range stats.StyleUsage {
		out.StyleUsage[k] = v
	}
	out.PlatformUsage = make(map[string]int, len(stats.PlatformUsage))
	for k, v := range stats.PlatformUsage {
		out.PlatformUsage[k] = v
	}
	return out, nil
}

// Reset clears the aggregate back to zero values, in memory and durably.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := zeroStats()
	l.cached = &stats
	return l.persist(ctx, &stats)
}

func (l *Ledger) load(ctx context.Context) (*Stats, error) {
	if l.cached != nil {
		return l.cached, nil
	}

	values, err := l.store.Get(ctx, storeKey)
	if err != nil {
		return nil, err
	}

	stats := zeroStats()
	if raw, ok := values[storeKey]; ok {
		if err := json.Unmarshal(raw, &stats); err != nil {
			// A corrupt record is not worth failing optimization over;
			// start the aggregate fresh.
			stats = zeroStats()
		}
		if stats.StyleUsage == nil {
			stats.StyleUsage = map[string]int{}
		}
		if stats.PlatformUsage == nil {
			stats.PlatformUsage = map[string]int{}
		}
	}

	l.cached = &stats
	return l.cached, nil
}

func (l *Ledger) persist(ctx context.Context, stats *Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return errors.LedgerPersist(err)
	}
	if err := l.store.Set(ctx, map[string]json.RawMessage{storeKey: raw}); err != nil {
		return errors.LedgerPersist(err)
	}
	return nil
}
