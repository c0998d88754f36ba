// Package config loads the gateway's runtime settings: score thresholds,
// per-detector weights, and operational limits. It follows the same
// YAML-with-hardcoded-fallback shape used elsewhere in this codebase: a
// missing or absent config file is not an error, it just means the
// defaults apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is an immutable snapshot of the gateway's scoring configuration.
// A *Config is read concurrently by every in-flight scan; build a new one
// and swap rather than mutating fields in place.
type Config struct {
	// Action thresholds.
	WarnThreshold  float64 `yaml:"warn_threshold"`
	BlockThreshold float64 `yaml:"block_threshold"`

	// Detector weights used by the score aggregator, keyed by detector name.
	WeightRegex       float64 `yaml:"weight_regex"`
	WeightNER         float64 `yaml:"weight_ner"`
	WeightCode        float64 `yaml:"weight_code"`
	WeightFingerprint float64 `yaml:"weight_fingerprint"`
	WeightLLM         float64 `yaml:"weight_llm"`
	WeightDefault     float64 `yaml:"weight_default"`

	// Operational limits.
	MaxPromptSizeBytes int `yaml:"max_prompt_size_bytes"`
	DecodeMaxPasses    int `yaml:"decode_max_passes"`

	// CodeClassifierThreshold is the is-code confidence floor, separate
	// from the overall WarnThreshold/BlockThreshold pair.
	CodeClassifierThreshold float64 `yaml:"code_classifier_threshold"`
}

// NewDefaultConfig returns the hardcoded baseline configuration, matching
// the "balanced" detection profile.
func NewDefaultConfig() *Config {
	return &Config{
		WarnThreshold:  0.30,
		BlockThreshold: 0.70,

		WeightRegex:       0.30,
		WeightNER:         0.25,
		WeightCode:        0.20,
		WeightFingerprint: 0.15,
		WeightLLM:         0.10,
		WeightDefault:     0.10,

		MaxPromptSizeBytes:      102400,
		DecodeMaxPasses:         3,
		CodeClassifierThreshold: 0.55,
	}
}

// LoadFile reads a YAML configuration file at path and overlays it onto the
// default configuration. A missing file is not an error: the defaults are
// returned untouched, so operators never need a config file to get a
// working gateway.
func LoadFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// WeightFor returns the aggregation weight for a named detector, falling
// back to WeightDefault for any detector name this config doesn't know
// about (custom/LLM-classifier slots included).
func (c *Config) WeightFor(detector string) float64 {
	switch detector {
	case "regex":
		return c.WeightRegex
	case "ner":
		return c.WeightNER
	case "code_classifier":
		return c.WeightCode
	case "fingerprint":
		return c.WeightFingerprint
	case "llm_classifier":
		return c.WeightLLM
	default:
		return c.WeightDefault
	}
}
