package dlp

import (
	"github.com/sentineldlp/gateway/internal/config"
	"github.com/sentineldlp/gateway/internal/pipeline"
	"github.com/sentineldlp/gateway/internal/regexengine"
)

// Scanner is the single entry point external packages use to run the
// detection pipeline. It is safe for concurrent use.
type Scanner struct {
	pipeline *pipeline.Pipeline
}

// NewScanner builds a Scanner from a configuration snapshot and an optional
// custom pattern set.
func NewScanner(cfg *config.Config, customPatterns []regexengine.PatternDefinition) (*Scanner, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	p, err := pipeline.New(cfg, customPatterns)
	if err != nil {
		return nil, err
	}
	return &Scanner{pipeline: p}, nil
}

// Scan runs the detection pipeline on req.Prompt and returns the wire-shaped
// response. Callers are responsible for req.Validate before calling Scan, per
// spec's caller-side resource bound.
func (s *Scanner) Scan(req ScanRequest) ScanResponse {
	req = req.WithRequestID()
	result := s.pipeline.Scan(req.Prompt, req.UserID)

	return ScanResponse{
		RequestID:     req.RequestID,
		Action:        result.Action.String(),
		RiskScore:     result.RiskScore,
		Detections:    toDetectionItems(result.Detections),
		PolicyMatched: result.PolicyMatched,
		Message:       result.Message,
		LatencyMs:     result.LatencyMs,
	}
}

// ReloadPatterns rebuilds the underlying engine with a new custom pattern
// set and atomically swaps it in.
func (s *Scanner) ReloadPatterns(custom []regexengine.PatternDefinition) error {
	return s.pipeline.ReloadPatterns(custom)
}

// UpdateConfig atomically swaps in a new configuration snapshot.
func (s *Scanner) UpdateConfig(cfg *config.Config) {
	s.pipeline.UpdateConfig(cfg)
}
