package pipeline

import (
	"fmt"
	"strings"

	"github.com/sentineldlp/gateway/internal/regexengine"
)

const maxMessageTypes = 5

// buildMessage produces the user-visible string attached to a ScanResult:
// up to five distinct detected type labels and a remediation hint for
// BLOCK, a generic caution for WARN, and nothing for ALLOW.
func buildMessage(action Action, detections []regexengine.Detection) string {
	switch action {
	case ActionBlock:
		seen := make(map[string]struct{}, maxMessageTypes)
		types := make([]string, 0, maxMessageTypes)
		for _, d := range detections {
			if _, dup := seen[d.Type]; dup {
				continue
			}
			seen[d.Type] = struct{}{}
			types = append(types, d.Type)
			if len(types) == maxMessageTypes {
				break
			}
		}
		return fmt.Sprintf(
			"Blocked: this prompt appears to contain %s. Remove or redact the flagged content before resubmitting.",
			strings.Join(types, ", "),
		)
	case ActionWarn:
		return "This prompt contains content that may warrant review before it is sent."
	default:
		return ""
	}
}
