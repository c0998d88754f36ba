package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/sentineldlp/gateway/internal/codeclassifier"
	"github.com/sentineldlp/gateway/internal/config"
	"github.com/sentineldlp/gateway/internal/decode"
	"github.com/sentineldlp/gateway/internal/regexengine"
)

// Pipeline is the stateless, re-entrant detection engine: one instance is
// built at startup and shared across every concurrent scan. The compiled
// regex engine and the configuration snapshot are stored behind
// atomic.Pointer so that reloading custom patterns or configuration means
// building a new value and swapping the pointer, never mutating fields a
// concurrent Scan might be reading.
type Pipeline struct {
	engine     atomic.Pointer[regexengine.Engine]
	cfg        atomic.Pointer[config.Config]
	classifier atomic.Pointer[codeclassifier.Classifier]
}

// New builds a Pipeline from a configuration snapshot and an optional list
// of custom patterns. It fails only if a custom pattern does not compile.
func New(cfg *config.Config, customPatterns []regexengine.PatternDefinition) (*Pipeline, error) {
	engine, err := regexengine.NewEngine(customPatterns)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{}
	p.engine.Store(engine)
	p.cfg.Store(cfg)
	p.classifier.Store(codeclassifier.NewClassifier(cfg.CodeClassifierThreshold))
	return p, nil
}

// ReloadPatterns compiles a new engine from custom and atomically swaps it
// in. The previous engine continues to serve any scan already in flight; it
// is simply never read from again once this returns.
func (p *Pipeline) ReloadPatterns(custom []regexengine.PatternDefinition) error {
	engine, err := regexengine.NewEngine(custom)
	if err != nil {
		return err
	}
	p.engine.Store(engine)
	return nil
}

// UpdateConfig atomically swaps in a new configuration snapshot, including
// rebuilding the code classifier's threshold.
func (p *Pipeline) UpdateConfig(cfg *config.Config) {
	p.cfg.Store(cfg)
	p.classifier.Store(codeclassifier.NewClassifier(cfg.CodeClassifierThreshold))
}

type detectionKey struct {
	start int
	end   int
	typ   string
}

// Scan runs the full detection pipeline on prompt: decode, regex scan
// (decoded, plus original on encoding detection), code classification,
// aggregation, and action mapping. userID is accepted for policy-targeting
// parity with the wire contract but the core itself never branches on it.
func (p *Pipeline) Scan(prompt string, userID string) ScanResult {
	start := time.Now()

	cfg := p.cfg.Load()
	engine := p.engine.Load()
	classifier := p.classifier.Load()

	hash := sha256.Sum256([]byte(prompt))
	promptHash := hex.EncodeToString(hash[:])

	decResult := decode.Decode(prompt, cfg.DecodeMaxPasses)
	scanned := decResult.Decoded

	regexHits := engine.Scan(scanned)
	allDetections := make([]regexengine.Detection, 0, len(regexHits))
	allDetections = append(allDetections, regexHits...)

	if decResult.WasEncoded {
		originalHits := engine.Scan(prompt)
		existing := make(map[detectionKey]struct{}, len(regexHits))
		for _, d := range regexHits {
			existing[detectionKey{d.Start, d.End, d.Type}] = struct{}{}
		}
		for _, d := range originalHits {
			key := detectionKey{d.Start, d.End, d.Type}
			if _, dup := existing[key]; dup {
				continue
			}
			existing[key] = struct{}{}
			allDetections = append(allDetections, d)
		}
	}

	codeHits := classifier.Scan(scanned)
	allDetections = append(allDetections, codeHits...)

	weights := newWeightTable(cfg)
	riskScore := aggregate(allDetections, weights)

	action := ToAction(riskScore, cfg.WarnThreshold, cfg.BlockThreshold)
	message := buildMessage(action, allDetections)

	return ScanResult{
		RiskScore:        riskScore,
		Action:           action,
		Detections:       allDetections,
		EncodingAnalysis: &decResult,
		PromptHash:       promptHash,
		LatencyMs:        time.Since(start).Milliseconds(),
		Message:          message,
	}
}
