package regexengine

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// customPatternFile is the on-disk/Redis-value shape for operator-supplied
// patterns, loaded the same way the rest of this codebase loads YAML
// configuration.
type customPatternFile struct {
	Patterns []customPatternEntry `yaml:"patterns"`
}

type customPatternEntry struct {
	Name        string  `yaml:"name"`
	Regex       string  `yaml:"regex"`
	Category    string  `yaml:"category"`
	Severity    string  `yaml:"severity"`
	Confidence  float64 `yaml:"confidence"`
	Description string  `yaml:"description"`
}

// LoadCustomPatterns parses a YAML document of operator-defined patterns
// and compiles each into a PatternDefinition. Custom patterns never carry a
// built-in Validator: operators get raw regex matching with a confidence
// score they choose themselves. An uncompilable regex returns an
// InternalPatternError identifying the offending entry; an unreadable
// source or malformed YAML returns a plain wrapped error. In either case
// callers are expected to keep running the previous Engine in that case
// rather than swap to a broken one.
func LoadCustomPatterns(r io.Reader) ([]PatternDefinition, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("regexengine: reading custom pattern source: %w", err)
	}

	var file customPatternFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("regexengine: parsing custom pattern YAML: %w", err)
	}

	defs := make([]PatternDefinition, 0, len(file.Patterns))
	for _, entry := range file.Patterns {
		compiled, err := regexp.Compile(entry.Regex)
		if err != nil {
			return nil, &InternalPatternError{PatternName: entry.Name, Err: err}
		}

		confidence := entry.Confidence
		if confidence <= 0 {
			confidence = 0.50
		}

		defs = append(defs, PatternDefinition{
			Name:        entry.Name,
			Pattern:     compiled,
			Category:    normalizeCategory(entry.Category),
			Severity:    normalizeSeverity(entry.Severity),
			Confidence:  confidence,
			Description: entry.Description,
		})
	}

	return defs, nil
}

func normalizeCategory(s string) Category {
	switch Category(s) {
	case CategoryPII, CategoryAPIKey, CategoryToken, CategoryDBConnection,
		CategorySourceCode, CategoryInternalURL, CategoryFinancial, CategoryCredential:
		return Category(s)
	default:
		return CategoryCredential
	}
}

func normalizeSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(s)
	default:
		return SeverityMedium
	}
}
