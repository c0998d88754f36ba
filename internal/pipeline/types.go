// Package pipeline orchestrates the detection stages — decode, regex scan,
// code classification, score aggregation — into the single scan(prompt)
// entry point the rest of the gateway calls.
package pipeline

import (
	"github.com/sentineldlp/gateway/internal/decode"
	"github.com/sentineldlp/gateway/internal/regexengine"
)

// Action is a scan verdict.
type Action string

const (
	ActionAllow Action = "ALLOW"
	ActionWarn  Action = "WARN"
	ActionBlock Action = "BLOCK"
)

// String returns the string form of the action.
func (a Action) String() string {
	return string(a)
}

// ToAction converts a risk score to an Action given the configured
// thresholds: score >= blockThreshold is BLOCK, score >= warnThreshold is
// WARN, anything lower is ALLOW.
func ToAction(score, warnThreshold, blockThreshold float64) Action {
	if score >= blockThreshold {
		return ActionBlock
	}
	if score >= warnThreshold {
		return ActionWarn
	}
	return ActionAllow
}

// ScanResult is the final, immutable outcome of one pipeline scan.
type ScanResult struct {
	RiskScore        float64
	Action           Action
	Detections       []regexengine.Detection
	EncodingAnalysis *decode.Result
	PromptHash       string
	LatencyMs        int64
	PolicyMatched    *string // reserved; the core never populates this
	Message          string
}

// IsBlocked reports whether the scan resulted in a BLOCK verdict.
func (r ScanResult) IsBlocked() bool {
	return r.Action == ActionBlock
}

// IsWarning reports whether the scan resulted in a WARN verdict.
func (r ScanResult) IsWarning() bool {
	return r.Action == ActionWarn
}

// IsAllowed reports whether the scan resulted in an ALLOW verdict.
func (r ScanResult) IsAllowed() bool {
	return r.Action == ActionAllow
}
