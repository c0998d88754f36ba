// Package auditlog emits one structured log line per scan, carrying the
// fields an audit trail needs (action, score, hash, latency) without
// depending on any particular persistence backend.
package auditlog

import (
	"github.com/sirupsen/logrus"

	"github.com/sentineldlp/gateway/internal/pipeline"
)

// Logger wraps a *logrus.Logger with the gateway's scan-record shape.
type Logger struct {
	log *logrus.Logger
}

// New wraps logger. A nil logger falls back to logrus's default instance
// logging to stderr at Info level.
func New(logger *logrus.Logger) *Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Logger{log: logger}
}

// RecordScan logs one completed scan at a level determined by its action:
// BLOCK logs at Warn (operators should notice a block without it being
// routine noise), WARN and ALLOW log at Info.
func (l *Logger) RecordScan(requestID, userID string, result pipeline.ScanResult) {
	entry := l.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"user_id":         userID,
		"action":          result.Action.String(),
		"risk_score":      result.RiskScore,
		"prompt_hash":     result.PromptHash,
		"latency_ms":      result.LatencyMs,
		"detection_count": len(result.Detections),
	})

	if len(result.Detections) > 0 {
		types := make([]string, 0, len(result.Detections))
		seen := make(map[string]struct{}, len(result.Detections))
		for _, d := range result.Detections {
			if _, dup := seen[d.Type]; dup {
				continue
			}
			seen[d.Type] = struct{}{}
			types = append(types, d.Type)
		}
		entry = entry.WithField("detection_types", types)
	}

	switch result.Action {
	case pipeline.ActionBlock:
		entry.Warn("prompt blocked")
	case pipeline.ActionWarn:
		entry.Info("prompt flagged for review")
	default:
		entry.Info("prompt allowed")
	}
}
