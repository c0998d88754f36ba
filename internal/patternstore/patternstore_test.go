package patternstore

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/sentineldlp/gateway/internal/regexengine"
)

var errForcedFailure = errors.New("forced failure")

type fakeSwapper struct {
	reloaded []regexengine.PatternDefinition
	calls    int
	failNext bool
}

func (f *fakeSwapper) ReloadPatterns(defs []regexengine.PatternDefinition) error {
	if f.failNext {
		f.failNext = false
		return errForcedFailure
	}
	f.reloaded = defs
	f.calls++
	return nil
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis, *fakeSwapper) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	swapper := &fakeSwapper{}
	store := New(client, swapper, 0)
	return store, mr, swapper
}

func TestPollOnceNoVersionKeyIsNoop(t *testing.T) {
	store, _, swapper := newTestStore(t)

	swapped, err := store.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	if swapped {
		t.Error("expected no swap when version key absent")
	}
	if swapper.calls != 0 {
		t.Errorf("expected 0 swaps, got %d", swapper.calls)
	}
}

func TestPollOnceSwapsOnNewVersion(t *testing.T) {
	store, mr, swapper := newTestStore(t)

	mr.Set(versionKey, "v1")
	mr.Set(patternsKey, `
patterns:
  - name: custom_thing
    regex: 'FOO-\d+'
    category: SOURCE_CODE
    severity: LOW
    confidence: 0.4
`)

	swapped, err := store.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	if !swapped {
		t.Fatal("expected a swap on first observed version")
	}
	if swapper.calls != 1 {
		t.Errorf("expected 1 swap call, got %d", swapper.calls)
	}
	if len(swapper.reloaded) != 1 || swapper.reloaded[0].Name != "custom_thing" {
		t.Errorf("expected custom_thing pattern reloaded, got %+v", swapper.reloaded)
	}
}

func TestPollOnceSkipsUnchangedVersion(t *testing.T) {
	store, mr, swapper := newTestStore(t)
	mr.Set(versionKey, "v1")
	mr.Set(patternsKey, "patterns: []")

	if _, err := store.PollOnce(context.Background()); err != nil {
		t.Fatalf("first PollOnce: %v", err)
	}
	swapped, err := store.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("second PollOnce: %v", err)
	}
	if swapped {
		t.Error("expected no swap when version unchanged")
	}
	if swapper.calls != 1 {
		t.Errorf("expected exactly 1 total swap call, got %d", swapper.calls)
	}
}

func TestPollOnceMissingPatternBodyIsNotReady(t *testing.T) {
	store, mr, swapper := newTestStore(t)
	mr.Set(versionKey, "v1")
	// patternsKey intentionally not set.

	swapped, err := store.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	if swapped {
		t.Error("expected no swap when pattern body missing")
	}
	if swapper.calls != 0 {
		t.Errorf("expected 0 swaps, got %d", swapper.calls)
	}
}

func TestPollOnceBadPatternRegexReturnsError(t *testing.T) {
	store, mr, _ := newTestStore(t)
	mr.Set(versionKey, "v1")
	mr.Set(patternsKey, "patterns:\n  - regex: '('\n    name: broken\n")

	_, err := store.PollOnce(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed custom pattern")
	}
}
