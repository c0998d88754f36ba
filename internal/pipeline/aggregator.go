package pipeline

import (
	"math"

	"github.com/sentineldlp/gateway/internal/config"
	"github.com/sentineldlp/gateway/internal/regexengine"
)

// DetectorSource is the closed tagged variant identifying which stage
// produced a detection, used to index the weight table directly instead of
// through a string-keyed map.
type DetectorSource int

const (
	DetectorRegex DetectorSource = iota
	DetectorCode
	DetectorNER
	DetectorFingerprint
	DetectorLLM
	DetectorCustom
	numDetectorSources
)

func detectorSourceFor(name string) DetectorSource {
	switch name {
	case "regex":
		return DetectorRegex
	case "code_classifier":
		return DetectorCode
	case "ner":
		return DetectorNER
	case "fingerprint":
		return DetectorFingerprint
	case "llm_classifier":
		return DetectorLLM
	default:
		return DetectorCustom
	}
}

// weightTable is the dense, tag-indexed weight array the aggregator reads
// from instead of doing a string lookup per detection group.
type weightTable [numDetectorSources]float64

func newWeightTable(cfg *config.Config) weightTable {
	var w weightTable
	w[DetectorRegex] = cfg.WeightRegex
	w[DetectorCode] = cfg.WeightCode
	w[DetectorNER] = cfg.WeightNER
	w[DetectorFingerprint] = cfg.WeightFingerprint
	w[DetectorLLM] = cfg.WeightLLM
	w[DetectorCustom] = cfg.WeightDefault
	return w
}

func (w weightTable) weightFor(detectorName string) float64 {
	return w[detectorSourceFor(detectorName)]
}

const (
	severityBoostTier1  = 1.30 // >= 3 HIGH/CRITICAL detections
	severityBoostTier2  = 1.15 // >= 2 HIGH/CRITICAL detections
	diversityBoostRatio = 1.20 // >= 3 distinct categories
	diversityBoostFloor = 3
	severityBoostFloor2 = 2
	severityBoostFloor3 = 3
)

// aggregate fuses detections from every detector into a single risk score
// in [0,1]: max-confidence per detector group, weighted average across
// groups, then a severity boost and a diversity boost, each capped at 1.0.
func aggregate(detections []regexengine.Detection, weights weightTable) float64 {
	if len(detections) == 0 {
		return 0
	}

	maxByDetector := make(map[string]float64, len(detections))
	for _, d := range detections {
		if d.Confidence > maxByDetector[d.Detector] {
			maxByDetector[d.Detector] = d.Confidence
		}
	}

	var weightedSum, weightSum float64
	for detector, score := range maxByDetector {
		w := weights.weightFor(detector)
		weightedSum += score * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	base := weightedSum / weightSum

	highOrCritical := 0
	categories := make(map[regexengine.Category]struct{}, len(detections))
	for _, d := range detections {
		if d.Severity == regexengine.SeverityHigh || d.Severity == regexengine.SeverityCritical {
			highOrCritical++
		}
		categories[d.Category] = struct{}{}
	}

	switch {
	case highOrCritical >= severityBoostFloor3:
		base = math.Min(base*severityBoostTier1, 1.0)
	case highOrCritical >= severityBoostFloor2:
		base = math.Min(base*severityBoostTier2, 1.0)
	}

	if len(categories) >= diversityBoostFloor {
		base = math.Min(base*diversityBoostRatio, 1.0)
	}

	return round4(math.Min(base, 1.0))
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
