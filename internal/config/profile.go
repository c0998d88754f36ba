package config

import "strings"

// Profiles are named presets that pre-fill a Config's thresholds and
// weights for a particular risk tolerance. Selecting a profile never
// changes how scores are computed, only which threshold/weight values a
// Config starts from — the aggregation formula in internal/pipeline is the
// same regardless of profile.
var profiles = map[string]*Config{
	"strict": {
		WarnThreshold:  0.20,
		BlockThreshold: 0.55,

		WeightRegex:       0.35,
		WeightNER:         0.25,
		WeightCode:        0.20,
		WeightFingerprint: 0.15,
		WeightLLM:         0.05,
		WeightDefault:     0.10,

		MaxPromptSizeBytes:      102400,
		DecodeMaxPasses:         4,
		CodeClassifierThreshold: 0.45,
	},
	"balanced": {
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
	},
	"permissive": {
		WarnThreshold:  0.45,
		BlockThreshold: 0.85,

		WeightRegex:       0.25,
		WeightNER:         0.25,
		WeightCode:        0.20,
		WeightFingerprint: 0.15,
		WeightLLM:         0.15,
		WeightDefault:     0.10,

		MaxPromptSizeBytes:      102400,
		DecodeMaxPasses:         2,
		CodeClassifierThreshold: 0.65,
	},
}

// Profile returns a copy of the named preset config, defaulting to
// "balanced" for an unknown or empty name so callers never have to
// nil-check the result.
func Profile(name string) *Config {
	preset, ok := profiles[strings.ToLower(name)]
	if !ok {
		preset = profiles["balanced"]
	}
	cfgCopy := *preset
	return &cfgCopy
}
