package regexengine

import (
	"strings"
	"unicode"

	"github.com/sentineldlp/gateway/internal/textutil"
)

// luhnCheck implements the standard mod-10 Luhn checksum over the digits
// of match, rejecting anything shorter than 13 digits.
func luhnCheck(match string) bool {
	digits := extractDigits(match)
	if len(digits) < 13 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// aadhaarCheck requires exactly 12 digits (after stripping separators)
// whose first digit is not 0 or 1.
func aadhaarCheck(match string) bool {
	digits := extractDigits(match)
	if len(digits) != 12 {
		return false
	}
	return digits[0] != 0 && digits[0] != 1
}

// panCheck requires the 4th character of a PAN to be one of the letters
// that denote a valid PAN holder type.
func panCheck(match string) bool {
	if len(match) != 10 {
		return false
	}
	const validFourth = "ABCFGHLJPT"
	return strings.ContainsRune(validFourth, rune(match[3]))
}

// highEntropy requires at least 8 characters and Shannon entropy above 3.0
// bits/char — a crude but effective filter for "looks like a real secret"
// versus a low-entropy placeholder string.
func highEntropy(match string) bool {
	if len(match) < 8 {
		return false
	}
	return textutil.ShannonEntropy(match) > 3.0
}

func extractDigits(s string) []int {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}
