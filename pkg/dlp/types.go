// Package dlp is the public facade external callers embed: wire-shaped
// request/response types plus a Scanner that wraps the internal detection
// pipeline behind a single Scan method. Everything under internal/ is
// reachable only through here.
package dlp

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sentineldlp/gateway/internal/regexengine"
)

// Source identifies which collaborator submitted a scan request.
type Source string

const (
	SourceBrowserExtension Source = "browser_extension"
	SourceAPIGateway       Source = "api_gateway"
	SourceProxy            Source = "proxy"
	SourceEndpointAgent    Source = "endpoint_agent"
)

// ScanMetadata carries optional request provenance, passed through to audit
// records unchanged; the core never inspects it.
type ScanMetadata struct {
	App       string `json:"app,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	DeviceID  string `json:"device_id,omitempty"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// ScanRequest is the wire shape of a scan call. RequestID defaults to a
// fresh UUID when left empty, mirroring the Python original's
// default_factory=uuid4.
type ScanRequest struct {
	RequestID   string        `json:"request_id,omitempty"`
	UserID      string        `json:"user_id,omitempty"`
	Source      Source        `json:"source"`
	Destination string        `json:"destination,omitempty"`
	Prompt      string        `json:"prompt"`
	Metadata    *ScanMetadata `json:"metadata,omitempty"`
}

// WithRequestID returns req with RequestID populated if it was empty.
func (req ScanRequest) WithRequestID() ScanRequest {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	return req
}

// Validate checks the fields the core relies on the caller having already
// enforced: a non-empty prompt under maxPromptSizeBytes and a known
// source. The core's own Scan never performs this check — it's the
// caller's pre-check named in spec §5's resource bounds.
func (req ScanRequest) Validate(maxPromptSizeBytes int) error {
	if len(req.Prompt) == 0 {
		return fmt.Errorf("dlp: prompt must not be empty")
	}
	if len(req.Prompt) > maxPromptSizeBytes {
		return fmt.Errorf("dlp: prompt exceeds max size of %d bytes", maxPromptSizeBytes)
	}
	switch req.Source {
	case SourceBrowserExtension, SourceAPIGateway, SourceProxy, SourceEndpointAgent:
	default:
		return fmt.Errorf("dlp: unknown source %q", req.Source)
	}
	return nil
}

// DetectionItem is the wire shape of one detection.
type DetectionItem struct {
	Type       string               `json:"type"`
	Category   regexengine.Category `json:"category"`
	Severity   regexengine.Severity `json:"severity"`
	Detector   string               `json:"detector"`
	Span       string               `json:"span"`
	Confidence float64              `json:"confidence"`
}

// ScanResponse is the wire shape returned to a caller.
type ScanResponse struct {
	RequestID     string          `json:"request_id"`
	Action        string          `json:"action"`
	RiskScore     float64         `json:"risk_score"`
	Detections    []DetectionItem `json:"detections"`
	PolicyMatched *string         `json:"policy_matched,omitempty"`
	Message       string          `json:"message"`
	LatencyMs     int64           `json:"latency_ms"`
}

func toDetectionItems(detections []regexengine.Detection) []DetectionItem {
	items := make([]DetectionItem, len(detections))
	for i, d := range detections {
		items[i] = DetectionItem{
			Type:       d.Type,
			Category:   d.Category,
			Severity:   d.Severity,
			Detector:   d.Detector,
			Span:       d.Span,
			Confidence: d.Confidence,
		}
	}
	return items
}
