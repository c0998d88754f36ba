package codeclassifier

import "testing"

func TestAnalyzeTooShortIsNeverCode(t *testing.T) {
	c := NewClassifier(0)
	got := c.Analyze("def f(): pass")
	if got.IsCode {
		t.Errorf("expected short snippet below min length to never classify as code, got %+v", got)
	}
}

func TestAnalyzeDetectsPython(t *testing.T) {
	c := NewClassifier(0)
	snippet := `
import os
from typing import Optional

def greet(name):
    if name is None:
        raise ValueError("name required")
    return f"hello {name}"

class Greeter:
    def __init__(self, name):
        self.name = name

if __name__ == "__main__":
    print(greet("world"))
`
	got := c.Analyze(snippet)
	if !got.IsCode {
		t.Fatalf("expected python snippet to classify as code, got %+v", got)
	}
	if got.Language != "python" {
		t.Errorf("language = %q, want %q", got.Language, "python")
	}
}

func TestAnalyzeDetectsSQL(t *testing.T) {
	c := NewClassifier(0)
	snippet := `
SELECT users.id, users.email FROM users
JOIN orders ON orders.user_id = users.id
WHERE orders.total > 100
ORDER BY users.id;

CREATE TABLE audit_log (id INT, event TEXT);
ALTER TABLE audit_log ADD COLUMN ts TIMESTAMP;
`
	got := c.Analyze(snippet)
	if !got.IsCode {
		t.Fatalf("expected SQL snippet to classify as code, got %+v", got)
	}
	if got.Language != "sql" {
		t.Errorf("language = %q, want %q", got.Language, "sql")
	}
}

func TestAnalyzePlainProseIsNotCode(t *testing.T) {
	c := NewClassifier(0)
	prose := `
Thank you for reaching out about our quarterly roadmap. We are planning
to expand the support team in the next two quarters and will need budget
approval from finance before the end of the month. Let me know if you
have any questions about the timeline or the staffing plan.
`
	got := c.Analyze(prose)
	if got.IsCode {
		t.Errorf("expected prose to not classify as code, got %+v", got)
	}
}

func TestScanReturnsSingleWholeTextDetection(t *testing.T) {
	c := NewClassifier(0)
	snippet := `
function main() {
  const x = 1;
  console.log(x);
  module.exports = { x };
}
`
	detections := c.Scan(snippet)
	if len(detections) != 1 {
		t.Fatalf("expected exactly 1 detection, got %d", len(detections))
	}
	d := detections[0]
	if d.Detector != "code_classifier" {
		t.Errorf("detector = %q, want %q", d.Detector, "code_classifier")
	}
	if d.Start != 0 || d.End != len(snippet) {
		t.Errorf("expected whole-text span, got start=%d end=%d len=%d", d.Start, d.End, len(snippet))
	}
}

func TestScanReturnsNilForNonCode(t *testing.T) {
	c := NewClassifier(0)
	if got := c.Scan("just a short plain sentence"); got != nil {
		t.Errorf("expected nil detections for non-code text, got %+v", got)
	}
}
