package config

import "testing"

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg == nil {
		t.Fatal("NewDefaultConfig returned nil")
	}
	if cfg.WarnThreshold <= 0 || cfg.WarnThreshold > 1 {
		t.Errorf("WarnThreshold should be between 0 and 1, got %f", cfg.WarnThreshold)
	}
	if cfg.BlockThreshold <= 0 || cfg.BlockThreshold > 1 {
		t.Errorf("BlockThreshold should be between 0 and 1, got %f", cfg.BlockThreshold)
	}
	if cfg.BlockThreshold <= cfg.WarnThreshold {
		t.Errorf("BlockThreshold (%f) should exceed WarnThreshold (%f)", cfg.BlockThreshold, cfg.WarnThreshold)
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile("/nonexistent/path/scorer.yaml")
	if err != nil {
		t.Fatalf("LoadFile with missing file should not error, got %v", err)
	}
	if cfg.WarnThreshold != NewDefaultConfig().WarnThreshold {
		t.Errorf("expected defaults when file missing, got %+v", cfg)
	}
}

func TestWeightForKnownDetectors(t *testing.T) {
	cfg := NewDefaultConfig()
	tests := map[string]float64{
		"regex":           cfg.WeightRegex,
		"ner":             cfg.WeightNER,
		"code_classifier": cfg.WeightCode,
		"fingerprint":     cfg.WeightFingerprint,
		"llm_classifier":  cfg.WeightLLM,
		"unknown_thing":   cfg.WeightDefault,
	}
	for detector, want := range tests {
		if got := cfg.WeightFor(detector); got != want {
			t.Errorf("WeightFor(%q) = %v, want %v", detector, got, want)
		}
	}
}

func TestProfileBalancedMatchesDefault(t *testing.T) {
	p := Profile("balanced")
	d := NewDefaultConfig()
	if p.WarnThreshold != d.WarnThreshold || p.BlockThreshold != d.BlockThreshold {
		t.Errorf("balanced profile should match default config thresholds, got %+v vs %+v", p, d)
	}
}

func TestProfileStrictIsStricterThanPermissive(t *testing.T) {
	strict := Profile("strict")
	permissive := Profile("permissive")
	if strict.BlockThreshold >= permissive.BlockThreshold {
		t.Errorf("strict.BlockThreshold (%v) should be lower than permissive's (%v)", strict.BlockThreshold, permissive.BlockThreshold)
	}
}

func TestProfileUnknownFallsBackToBalanced(t *testing.T) {
	got := Profile("not-a-real-profile")
	want := Profile("balanced")
	if *got != *want {
		t.Errorf("unknown profile should fall back to balanced, got %+v want %+v", got, want)
	}
}
