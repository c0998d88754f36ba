// Package decode implements the recursive encoding decoder: stage B of the
// detection pipeline. It strips URL/Base64/hex/gzip obfuscation and Unicode
// tricks from a prompt so downstream detectors operate on plaintext,
// without destroying the surrounding natural-language text around an
// embedded encoded fragment.
package decode

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/hex"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sentineldlp/gateway/internal/textutil"
)

// Result is the outcome of decoding a single prompt: the original and
// decoded text, the ordered list of transformations applied, and the
// entropy of each view.
type Result struct {
	Original        string
	Decoded         string
	Transformations []string
	EntropyOriginal float64
	EntropyDecoded  float64
	WasEncoded      bool
}

const (
	minDecodedLength   = 3
	printableRatioGate = 0.7
	defaultMaxPasses   = 3
)

// base64Pattern matches Base64 runs of at least 8 quantums (32 characters)
// with valid padding.
var base64Pattern = regexp.MustCompile(`(?:[A-Za-z0-9+/]{4}){7,}(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{4})`)

// hexPattern matches runs of hex bytes, optionally 0x-prefixed, optionally
// space-separated, at least 4 bytes. The numeric portion is always captured
// in group 1, separate from any "0x" prefix.
var hexPattern = regexp.MustCompile(`(?:0x)?([0-9a-fA-F]{2}(?:\s?[0-9a-fA-F]{2}){3,})`)

// tokenPattern finds whitespace-delimited tokens and their byte offsets, so
// collapseWhitespaceObfuscation can tell a single-character token from a
// multi-character word without lookaround (unavailable in RE2).
var tokenPattern = regexp.MustCompile(`\S+`)

// Decode runs the multi-pass decoding pipeline: URL-decode, Base64-decode,
// hex-decode, Unicode-normalize, repeated up to maxPasses times or until a
// whole pass makes no further change, followed by a single whitespace
// collapse pass. Decode never returns an error: malformed encoded fragments
// are left untouched in place.
func Decode(text string, maxPasses int) Result {
	if maxPasses <= 0 {
		maxPasses = defaultMaxPasses
	}

	result := Result{
		Original:        text,
		EntropyOriginal: textutil.ShannonEntropy(text),
	}

	current := text
	for pass := 1; pass <= maxPasses; pass++ {
		changedThisPass := false

		if next, changed := tryURLDecode(current); changed {
			current = next
			result.Transformations = append(result.Transformations, label(pass, "url_decode"))
			changedThisPass = true
		}

		if next, changed := tryBase64Decode(current); changed {
			current = next
			result.Transformations = append(result.Transformations, label(pass, "base64_decode"))
			changedThisPass = true
		}

		if next, changed := tryHexDecode(current); changed {
			current = next
			result.Transformations = append(result.Transformations, label(pass, "hex_decode"))
			changedThisPass = true
		}

		if next, changed := textutil.NormalizeUnicode(current); changed {
			current = next
			result.Transformations = append(result.Transformations, label(pass, "unicode_normalize"))
			changedThisPass = true
		}

		if !changedThisPass {
			break
		}
	}

	if collapsed := collapseWhitespaceObfuscation(current); collapsed != current {
		current = collapsed
		result.Transformations = append(result.Transformations, "whitespace_collapse")
	}

	result.Decoded = current
	result.EntropyDecoded = textutil.ShannonEntropy(current)
	result.WasEncoded = len(result.Transformations) > 0

	return result
}

func label(pass int, op string) string {
	return "pass" + strconv.Itoa(pass) + ":" + op
}

func tryURLDecode(text string) (string, bool) {
	decoded, err := url.PathUnescape(text)
	if err != nil {
		return text, false
	}
	return decoded, decoded != text
}

func tryBase64Decode(text string) (string, bool) {
	changed := false
	result := base64Pattern.ReplaceAllStringFunc(text, func(match string) string {
		decoded, err := base64.StdEncoding.DecodeString(match)
		if err != nil {
			return match
		}
		if candidate, ok := acceptGzipOrPlain(decoded); ok {
			changed = true
			return candidate
		}
		return match
	})
	return result, changed
}

// acceptGzipOrPlain attempts a gzip inflate of decoded bytes first (the
// decoder's own supplement to the spec's base64 pass, covering gzip-of-
// base64 payloads); if that fails or doesn't pass the gate, it falls back
// to treating decoded as a plain UTF-8 candidate.
func acceptGzipOrPlain(decoded []byte) (string, bool) {
	if gz, err := gzip.NewReader(bytes.NewReader(decoded)); err == nil {
		inflated, readErr := io.ReadAll(gz)
		_ = gz.Close()
		if readErr == nil {
			if candidate, ok := acceptCandidate(string(inflated)); ok {
				return candidate, true
			}
		}
	}
	return acceptCandidate(string(decoded))
}

func acceptCandidate(candidate string) (string, bool) {
	if !utf8.ValidString(candidate) {
		return "", false
	}
	if len([]rune(candidate)) < minDecodedLength {
		return "", false
	}
	if textutil.PrintableRatio(candidate) <= printableRatioGate {
		return "", false
	}
	return candidate, true
}

func tryHexDecode(text string) (string, bool) {
	changed := false
	result := hexPattern.ReplaceAllStringFunc(text, func(match string) string {
		submatches := hexPattern.FindStringSubmatch(match)
		hexDigits := match
		if len(submatches) > 1 && submatches[1] != "" {
			hexDigits = submatches[1]
		}
		hexDigits = strings.ReplaceAll(hexDigits, " ", "")

		decoded, err := hex.DecodeString(hexDigits)
		if err != nil {
			return match
		}
		if candidate, ok := acceptCandidate(string(decoded)); ok {
			changed = true
			return candidate
		}
		return match
	})
	return result, changed
}

// minObfuscationTokens is the shortest run of single-character tokens that
// collapseWhitespaceObfuscation treats as letter-by-letter spelling rather
// than coincidental short words.
const minObfuscationTokens = 5

// collapseWhitespaceObfuscation removes the intra-run spaces from runs of
// five or more single-character tokens each separated by exactly one space
// ("A K I A 1 2 3 4" -> "AKIA1234"), without touching ordinary word
// spacing. Token boundaries are tracked explicitly (rather than via regex
// lookaround, which RE2 doesn't support) so a multi-character word
// adjacent to the run is never pulled into it.
func collapseWhitespaceObfuscation(text string) string {
	tokens := tokenPattern.FindAllStringIndex(text, -1)
	if len(tokens) < minObfuscationTokens {
		return text
	}

	var runs [][2]int // indices into tokens, [start, end) of a collapsible run
	runStart := -1
	for i, tok := range tokens {
		isSingleChar := tok[1]-tok[0] == 1
		singleSpaceBefore := i > 0 && tokens[i-1][1] == tok[0]-1 && text[tokens[i-1][1]] == ' '

		if isSingleChar && (runStart == -1 || singleSpaceBefore) {
			if runStart == -1 {
				runStart = i
			}
			continue
		}

		if runStart != -1 {
			if i-runStart >= minObfuscationTokens {
				runs = append(runs, [2]int{runStart, i})
			}
			runStart = -1
		}

		if isSingleChar {
			runStart = i
		}
	}
	if runStart != -1 && len(tokens)-runStart >= minObfuscationTokens {
		runs = append(runs, [2]int{runStart, len(tokens)})
	}

	if len(runs) == 0 {
		return text
	}

	var b strings.Builder
	prevEnd := 0
	for _, run := range runs {
		start := tokens[run[0]][0]
		end := tokens[run[1]-1][1]
		b.WriteString(text[prevEnd:start])
		for i := run[0]; i < run[1]; i++ {
			b.WriteString(text[tokens[i][0]:tokens[i][1]])
		}
		prevEnd = end
	}
	b.WriteString(text[prevEnd:])
	return b.String()
}
