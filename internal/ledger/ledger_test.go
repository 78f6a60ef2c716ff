package ledger

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/promptsmith/promptsmith/internal/errors"
	"github.com/promptsmith/promptsmith/internal/store"
)

func TestRecord_Aggregates(t *testing.T) {
	l := New(store.NewMemStore())
	ctx := context.Background()

	entries := []Entry{
		{Style: "professional", Platform: "chatgpt", Improvement: 10, TimeSaved: 60},
		{Style: "academic", Platform: "chatgpt", Improvement: 20, TimeSaved: 95},
		{Style: "professional", Platform: "claude", Improvement: 33, TimeSaved: 152},
	}
	for _, e := range entries {
		if err := l.Record(ctx, e); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	stats, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	if stats.Optimizations != 3 {
		t.Errorf("Optimizations = %d, want 3", stats.Optimizations)
	}
	if want := (10.0 + 20 + 33) / 3; math.Abs(stats.AverageImprovement-want) > 1e-9 {
		t.Errorf("AverageImprovement = %v, want %v", stats.AverageImprovement, want)
	}
	if stats.StyleUsage["professional"] != 2 || stats.StyleUsage["academic"] != 1 {
		t.Errorf("StyleUsage = %v", stats.StyleUsage)
	}
	if stats.PlatformUsage["chatgpt"] != 2 || stats.PlatformUsage["claude"] != 1 {
		t.Errorf("PlatformUsage = %v", stats.PlatformUsage)
	}
	if stats.TimeSavings != 60+95+152 {
		t.Errorf("TimeSavings = %v", stats.TimeSavings)
	}

	// Each histogram accounts for every recorded optimization.
	styleTotal, platformTotal := 0, 0
	for _, n := range stats.StyleUsage {
		styleTotal += n
	}
	for _, n := range stats.PlatformUsage {
		platformTotal += n
	}
	if styleTotal != stats.Optimizations || platformTotal != stats.Optimizations {
		t.Errorf("histogram totals %d/%d, want %d", styleTotal, platformTotal, stats.Optimizations)
	}
}

func TestRecord_PersistsAcrossLedgers(t *testing.T) {
	backing := store.NewMemStore()
	ctx := context.Background()

	first := New(backing)
	if err := first.Record(ctx, Entry{Style: "default", Platform: "chatgpt", Improvement: 12, TimeSaved: 68}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	// A fresh ledger over the same store sees the durable record.
	second := New(backing)
	stats, err := second.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if stats.Optimizations != 1 || stats.PlatformUsage["chatgpt"] != 1 {
		t.Errorf("reloaded stats = %+v", stats)
	}
}

func TestRecord_PersistFailure(t *testing.T) {
	backing := store.NewMemStore()
	backing.FailSet = context.DeadlineExceeded

	l := New(backing)
	err := l.Record(context.Background(), Entry{Style: "default", Platform: "default"})
	if !errors.HasCode(err, errors.ErrLedgerPersist) {
		t.Errorf("Record() error = %v, want code %s", err, errors.ErrLedgerPersist)
	}

	// The in-memory aggregate moved forward anyway; callers log and continue.
	stats, snapErr := l.Snapshot(context.Background())
	if snapErr != nil {
		t.Fatalf("Snapshot() error: %v", snapErr)
	}
	if stats.Optimizations != 1 {
		t.Errorf("Optimizations = %d, want 1", stats.Optimizations)
	}
}

func TestReset(t *testing.T) {
	l := New(store.NewMemStore())
	ctx := context.Background()

	if err := l.Record(ctx, Entry{Style: "creative", Platform: "gemini", Improvement: 8, TimeSaved: 52}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := l.Reset(ctx); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}

	stats, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if stats.Optimizations != 0 || stats.TimeSavings != 0 || len(stats.StyleUsage) != 0 {
		t.Errorf("stats after reset = %+v", stats)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	l := New(store.NewMemStore())
	ctx := context.Background()

	if err := l.Record(ctx, Entry{Style: "default", Platform: "default"}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	snap, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	snap.StyleUsage["default"] = 99

	again, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if again.StyleUsage["default"] != 1 {
		t.Error("mutating a snapshot leaked into the ledger")
	}
}

func TestLoad_CorruptRecordStartsFresh(t *testing.T) {
	backing := store.NewMemStore()
	ctx := context.Background()

	if err := backing.Set(ctx, map[string]json.RawMessage{storeKey: json.RawMessage(`"not an object"`)}); err != nil {
		t.Fatal(err)
	}

	l := New(backing)
	stats, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if stats.Optimizations != 0 {
		t.Errorf("Optimizations = %d, want 0", stats.Optimizations)
	}
}
