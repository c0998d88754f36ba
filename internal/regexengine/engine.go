package regexengine

import "fmt"

// InternalPatternError identifies a custom pattern that cannot be used: it
// is returned by LoadCustomPatterns when an entry's regex fails to compile
// and by NewEngine when an entry carries no compiled Pattern. Scan itself
// is infallible.
type InternalPatternError struct {
	PatternName string
	Err         error
}

func (e *InternalPatternError) Error() string {
	return fmt.Sprintf("regexengine: pattern %q failed to compile: %v", e.PatternName, e.Err)
}

func (e *InternalPatternError) Unwrap() error {
	return e.Err
}

// Engine holds an immutable, concurrency-safe catalogue of compiled
// patterns: the 27 built-ins plus any custom patterns supplied at
// construction. Once built an Engine never mutates; hot-reloading custom
// patterns means building a new Engine and swapping the pointer, not
// mutating this one in place.
type Engine struct {
	patterns []PatternDefinition
}

// NewEngine compiles the built-in catalogue together with custom, all of
// which must already carry a compiled Pattern (custom patterns are compiled
// by their loader before reaching here so that a bad pattern surfaces as an
// InternalPatternError rather than a panic mid-scan). Custom entries are
// appended after the built-ins, so they are matched, and therefore emitted,
// last.
func NewEngine(custom []PatternDefinition) (*Engine, error) {
	for _, def := range custom {
		if def.Pattern == nil {
			return nil, &InternalPatternError{PatternName: def.Name, Err: fmt.Errorf("nil compiled pattern")}
		}
	}

	patterns := make([]PatternDefinition, 0, len(builtinCatalogue())+len(custom))
	patterns = append(patterns, builtinCatalogue()...)
	patterns = append(patterns, custom...)

	return &Engine{patterns: patterns}, nil
}

// Scan runs every pattern in catalogue order against text and returns one
// Detection per surviving match, in catalogue order and then match order
// within a pattern. A match whose validator returns false is discarded
// silently: no error, no detection. Scan never errors and is safe for
// concurrent use by multiple goroutines sharing the same Engine.
func (e *Engine) Scan(text string) []Detection {
	var detections []Detection

	for _, def := range e.patterns {
		locs := def.Pattern.FindAllStringIndex(text, -1)
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			match := text[start:end]

			if def.Validator != nil && !def.Validator(match) {
				continue
			}

			detections = append(detections, Detection{
				Type:       def.Name,
				Category:   def.Category,
				Severity:   def.Severity,
				Detector:   "regex",
				Span:       truncateSpan(match),
				Start:      start,
				End:        end,
				Confidence: def.Confidence,
				Metadata:   map[string]string{"description": def.Description},
			})
		}
	}

	return detections
}

// PatternNames returns the stable names of every pattern compiled into the
// engine, built-in and custom, in catalogue order. Useful for diagnostics
// and for tests asserting the full catalogue loaded.
func (e *Engine) PatternNames() []string {
	names := make([]string, len(e.patterns))
	for i, def := range e.patterns {
		names[i] = def.Name
	}
	return names
}
