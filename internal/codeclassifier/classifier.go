// Package codeclassifier implements stage D of the detection pipeline:
// a heuristic classifier that decides whether a prompt embeds source code,
// using per-language keyword density, structural markers, and a weighted
// blend of the two — no parser, no AST, just regex density scoring.
package codeclassifier

import (
	"regexp"
	"sort"
	"strings"
)

// Analysis is the result of classifying one piece of text.
type Analysis struct {
	IsCode     bool
	Confidence float64
	Language   string // empty when no language clears the reporting floor
	Features   Features
}

// Features captures the intermediate scoring signals, surfaced mainly for
// diagnostics and tests rather than for any downstream consumer.
type Features struct {
	Structural      map[string]float64
	LanguageScores  map[string]float64
	FinalConfidence float64
}

const (
	minTextLength     = 30
	defaultThreshold  = 0.55
	langReportFloor   = 0.2
	structuralCap     = 0.5
	perMarkerCap      = 0.15
	languageWeight    = 0.6
	structuralWeight  = 0.4
	keywordDensityWt  = 0.4
	patternStrengthWt = 0.6
)

type languageProfile struct {
	keywords []string
	patterns []*regexp.Regexp
	weight   float64
}

var languageProfiles = map[string]languageProfile{
	"python": {
		keywords: []string{
			"def", "class", "import", "from", "return", "yield", "async", "await",
			"if", "elif", "else", "for", "while", "try", "except", "finally",
			"with", "lambda", "raise", "pass", "self", "__init__", "print",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`),
			regexp.MustCompile(`(?m)^\s*class\s+\w+`),
			regexp.MustCompile(`(?m)^\s*import\s+\w+`),
			regexp.MustCompile(`(?m)^\s*from\s+\w+\s+import`),
			regexp.MustCompile(`(?m)if\s+__name__\s*==`),
		},
		weight: 1.0,
	},
	"javascript": {
		keywords: []string{
			"const", "let", "var", "function", "return", "async", "await",
			"class", "extends", "import", "export", "require", "module",
			"console", "document", "window", "this", "new", "typeof",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)(?:const|let|var)\s+\w+\s*=`),
			regexp.MustCompile(`(?m)(?:function|=>)\s*`),
			regexp.MustCompile(`(?m)module\.exports`),
			regexp.MustCompile(`(?m)(?:import|export)\s+`),
			regexp.MustCompile(`(?m)console\.\w+\(`),
		},
		weight: 1.0,
	},
	"java": {
		keywords: []string{
			"public", "private", "protected", "static", "void", "class",
			"interface", "extends", "implements", "import", "package",
			"return", "new", "this", "super", "final", "abstract",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^\s*(?:public|private|protected)\s+`),
			regexp.MustCompile(`(?m)^\s*package\s+[\w.]+;`),
			regexp.MustCompile(`(?m)^\s*import\s+[\w.]+;`),
			regexp.MustCompile(`(?m)System\.\w+\.\w+\(`),
		},
		weight: 1.0,
	},
	"sql": {
		keywords: []string{
			"SELECT", "INSERT", "UPDATE", "DELETE", "FROM", "WHERE",
			"JOIN", "CREATE", "ALTER", "DROP", "TABLE", "INDEX",
			"GROUP BY", "ORDER BY", "HAVING", "UNION",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)\bSELECT\b.+\bFROM\b`),
			regexp.MustCompile(`(?im)\bINSERT\s+INTO\b`),
			regexp.MustCompile(`(?im)\bCREATE\s+TABLE\b`),
			regexp.MustCompile(`(?im)\bALTER\s+TABLE\b`),
		},
		weight: 1.2, // SQL leakage carries higher risk than app-code leakage
	},
	"shell": {
		keywords: []string{
			"#!/bin/bash", "echo", "export", "sudo", "chmod", "chown",
			"grep", "awk", "sed", "curl", "wget", "apt-get", "yum",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^#!/bin/(?:bash|sh|zsh)`),
			regexp.MustCompile(`(?m)^\s*export\s+\w+=`),
			regexp.MustCompile(`(?m)\|\s*(?:grep|awk|sed|sort)\s`),
		},
		weight: 1.1,
	},
}

var structuralPatterns = map[string]*regexp.Regexp{
	"braces":          regexp.MustCompile(`[{}]`),
	"semicolons":      regexp.MustCompile(`(?m);\s*$`),
	"indentation":     regexp.MustCompile(`(?m)^(?:    |\t)\S`),
	"comments":        regexp.MustCompile(`(?m)(?://|#|/\*|\*/|<!--)`),
	"string_literals": regexp.MustCompile("(?m)(?:\"[^\"]{2,}\"|'[^']{2,}'|`[^`]{2,}`)"),
	"operators":       regexp.MustCompile(`(?:===|!==|==|!=|>=|<=|&&|\|\||=>|->|\+=|-=|\*=|/=)`),
}

// keywordBoundary returns a compiled word-boundary-wrapped matcher for a
// keyword. It is compiled afresh on every call rather than cached, so
// Analyze recompiles each keyword matcher every time it runs.
func keywordBoundary(kw string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
}

// Classifier scores text for source-code likelihood against a threshold.
type Classifier struct {
	threshold float64
}

// NewClassifier builds a Classifier. A threshold of 0 selects the default
// of 0.55.
func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	return &Classifier{threshold: threshold}
}

// Analyze scores text across every known language and structural markers,
// returning whether it crosses the classifier's is-code threshold.
func (c *Classifier) Analyze(text string) Analysis {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minTextLength {
		return Analysis{}
	}

	lines := strings.Split(trimmed, "\n")
	totalLines := float64(len(lines))

	langScores := make(map[string]float64, len(languageProfiles))
	for lang, profile := range languageProfiles {
		keywordHits := 0
		for _, kw := range profile.keywords {
			if keywordBoundary(kw).MatchString(text) {
				keywordHits++
			}
		}
		patternHits := 0
		for _, p := range profile.patterns {
			if p.MatchString(text) {
				patternHits++
			}
		}

		keywordDensity := float64(keywordHits) / maxFloat(totalLines, 1)
		patternStrength := float64(patternHits) / maxFloat(float64(len(profile.patterns)), 1)

		score := (keywordDensity*keywordDensityWt + patternStrength*patternStrengthWt) * profile.weight
		langScores[lang] = minFloat(score, 1.0)
	}

	structuralFeatures := make(map[string]float64, len(structuralPatterns))
	structuralScore := 0.0
	for name, pattern := range structuralPatterns {
		matches := len(pattern.FindAllString(text, -1))
		density := float64(matches) / maxFloat(totalLines, 1)
		structuralFeatures[name] = round3(density)
		structuralScore += minFloat(density*perMarkerCap, perMarkerCap)
	}
	structuralScore = minFloat(structuralScore, structuralCap)

	bestLang, bestScore := bestLanguage(langScores)

	confidence := minFloat(bestScore*languageWeight+structuralScore*structuralWeight, 1.0)
	confidence = round3(confidence)

	isCode := confidence >= c.threshold
	detectedLang := ""
	if isCode && bestScore > langReportFloor {
		detectedLang = bestLang
	}

	roundedLangScores := make(map[string]float64, len(langScores))
	for k, v := range langScores {
		roundedLangScores[k] = round3(v)
	}

	return Analysis{
		IsCode:     isCode,
		Confidence: confidence,
		Language:   detectedLang,
		Features: Features{
			Structural:      structuralFeatures,
			LanguageScores:  roundedLangScores,
			FinalConfidence: confidence,
		},
	}
}

// bestLanguage returns the highest-scoring language, breaking ties
// deterministically by name since Go map iteration order is randomized.
func bestLanguage(scores map[string]float64) (string, float64) {
	if len(scores) == 0 {
		return "", 0
	}
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestScore := names[0], scores[names[0]]
	for _, name := range names[1:] {
		if scores[name] > bestScore {
			best, bestScore = name, scores[name]
		}
	}
	return best, bestScore
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func round3(f float64) float64 {
	return float64(int64(f*1000+0.5)) / 1000
}
