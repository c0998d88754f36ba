// Package patternstore polls a Redis key for an operator-managed custom
// pattern set and, when its version changes, rebuilds the regex engine and
// swaps it into a pipeline.Pipeline atomically. It is the concrete home for
// spec's "reloading custom patterns requires building a new engine
// instance and atomically swapping it" — the pipeline package owns the
// atomic.Pointer, this package owns deciding when to trigger a swap.
package patternstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sentineldlp/gateway/internal/regexengine"
)

const (
	versionKey  = "dlp:patterns:version"
	patternsKey = "dlp:patterns:yaml"
)

// Swapper is the subset of *pipeline.Pipeline the store needs, kept as an
// interface so tests can stub it without building a real Pipeline.
type Swapper interface {
	ReloadPatterns(custom []regexengine.PatternDefinition) error
}

// Store polls Redis for pattern set changes and swaps them into a Swapper.
type Store struct {
	client     *redis.Client
	swapper    Swapper
	pollPeriod time.Duration
	lastVer    string
}

// New builds a Store. client and swapper must be non-nil; pollPeriod
// defaults to 10s when zero.
func New(client *redis.Client, swapper Swapper, pollPeriod time.Duration) *Store {
	if pollPeriod <= 0 {
		pollPeriod = 10 * time.Second
	}
	return &Store{client: client, swapper: swapper, pollPeriod: pollPeriod}
}

// PollOnce checks Redis for a version change and, if the version differs
// from the last one this Store observed, loads and swaps the new pattern
// set. It reports whether a swap happened.
func (s *Store) PollOnce(ctx context.Context) (bool, error) {
	version, err := s.client.Get(ctx, versionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("patternstore: reading version key: %w", err)
	}

	if version == s.lastVer {
		return false, nil
	}

	raw, err := s.client.Get(ctx, patternsKey).Result()
	if err != nil {
		if err == redis.Nil {
			// Version advanced but no pattern body published yet; treat as
			// not-ready rather than an error, and try again next poll.
			return false, nil
		}
		return false, fmt.Errorf("patternstore: reading pattern body: %w", err)
	}

	defs, err := regexengine.LoadCustomPatterns(strings.NewReader(raw))
	if err != nil {
		return false, fmt.Errorf("patternstore: parsing pattern body at version %s: %w", version, err)
	}

	if err := s.swapper.ReloadPatterns(defs); err != nil {
		return false, fmt.Errorf("patternstore: swapping engine at version %s: %w", version, err)
	}

	s.lastVer = version
	return true, nil
}

// Run polls on pollPeriod until ctx is cancelled. Poll errors do not stop
// the loop: a transient Redis outage should not prevent later polls from
// succeeding once Redis recovers. Each poll error is passed to onError
// when it is non-nil and is otherwise discarded.
func (s *Store) Run(ctx context.Context, onError func(error)) {
	ticker := time.NewTicker(s.pollPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PollOnce(ctx); err != nil && onError != nil {
				onError(err)
			}
		}
	}
}
