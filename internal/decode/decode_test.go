package decode

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeNoEncodingLeavesTextUnchanged(t *testing.T) {
	result := Decode("just a plain sentence with no tricks", 3)
	if result.WasEncoded {
		t.Errorf("expected WasEncoded=false, got transformations %v", result.Transformations)
	}
	if result.Decoded != result.Original {
		t.Errorf("decoded = %q, want unchanged original %q", result.Decoded, result.Original)
	}
}

func TestDecodeURLEncoding(t *testing.T) {
	result := Decode("secret%3Dhunter2", 3)
	if !strings.Contains(result.Decoded, "secret=hunter2") {
		t.Errorf("expected url-decoded output, got %q", result.Decoded)
	}
	if !result.WasEncoded {
		t.Error("expected WasEncoded=true")
	}
}

func TestDecodeBase64EmbeddedSegment(t *testing.T) {
	payload := "the quick brown fox jumps over the lazy dog repeatedly"
	encoded := base64.StdEncoding.EncodeToString([]byte(payload))
	prompt := "here is some data: " + encoded + " end of message"

	result := Decode(prompt, 3)
	if !result.WasEncoded {
		t.Fatalf("expected WasEncoded=true, got transformations=%v decoded=%q", result.Transformations, result.Decoded)
	}
	if !strings.Contains(result.Decoded, payload) {
		t.Errorf("expected decoded text to contain %q, got %q", payload, result.Decoded)
	}
	if !strings.Contains(result.Decoded, "here is some data:") {
		t.Errorf("expected surrounding prose preserved, got %q", result.Decoded)
	}
}

func TestDecodeBase64RejectsLowPrintableJunk(t *testing.T) {
	junk := base64.StdEncoding.EncodeToString([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F})
	prompt := "payload " + junk
	result := Decode(prompt, 3)
	if !strings.Contains(result.Decoded, junk) {
		t.Errorf("expected low-printable base64 candidate to be left intact, got %q", result.Decoded)
	}
}

func TestDecodeHexEmbeddedSegment(t *testing.T) {
	payload := "hello there"
	hexEncoded := ""
	for _, b := range []byte(payload) {
		hexEncoded += byteToHex(b)
	}
	prompt := "0x" + hexEncoded + " is the payload"

	result := Decode(prompt, 3)
	if !strings.Contains(result.Decoded, payload) {
		t.Errorf("expected hex-decoded payload in output, got %q", result.Decoded)
	}
}

func byteToHex(b byte) string {
	const hexDigits = "0123456789abcdef"
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}

func TestDecodeWhitespaceObfuscationCollapse(t *testing.T) {
	result := Decode("A K I A 1 2 3 4 E X A M P L E", 3)
	if !strings.Contains(result.Decoded, "AKIA1234EXAMPLE") {
		t.Errorf("expected whitespace-obfuscated run collapsed, got %q", result.Decoded)
	}
}

func TestDecodeWhitespaceCollapsePreservesNormalWords(t *testing.T) {
	result := Decode("hello there my friend how are you today", 3)
	if result.Decoded != result.Original {
		t.Errorf("expected normal prose untouched, got %q", result.Decoded)
	}
}

func TestDecodeIdempotentWhenNoFurtherEncoding(t *testing.T) {
	first := Decode("plain text with an email alice@example.com", 3)
	second := Decode(first.Decoded, 3)
	if first.Decoded != second.Decoded {
		t.Errorf("expected decode idempotence, got %q then %q", first.Decoded, second.Decoded)
	}
}

func TestDecodeMalformedEncodingNeverErrors(t *testing.T) {
	result := Decode("%zz not a real escape sequence", 3)
	if result.Decoded == "" {
		t.Error("expected malformed encoding to be absorbed without error, not produce empty output")
	}
}

func TestDecodeDefaultsMaxPasses(t *testing.T) {
	result := Decode("hello", 0)
	if result.Decoded != "hello" {
		t.Errorf("decoded = %q, want unchanged", result.Decoded)
	}
}
