package codeclassifier

import (
	"github.com/sentineldlp/gateway/internal/regexengine"
)

// Scan runs Analyze and, if the result crosses the is-code threshold,
// returns a single Detection spanning the entire input. Source-code
// findings are reported whole-text rather than span-located: unlike a
// regex hit, "this paragraph is Python" has no single matched substring.
func (c *Classifier) Scan(text string) []regexengine.Detection {
	analysis := c.Analyze(text)
	if !analysis.IsCode {
		return nil
	}

	lang := analysis.Language
	if lang == "" {
		lang = "unknown"
	}

	span := text
	if len(span) > 100 {
		span = span[:100]
	}

	return []regexengine.Detection{
		{
			Type:       "source_code_" + lang,
			Category:   regexengine.CategorySourceCode,
			Severity:   regexengine.SeverityHigh,
			Detector:   "code_classifier",
			Span:       span,
			Start:      0,
			End:        len(text),
			Confidence: analysis.Confidence,
			Metadata:   map[string]string{"language": lang},
		},
	}
}
