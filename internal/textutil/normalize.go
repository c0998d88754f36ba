package textutil

import "golang.org/x/text/unicode/norm"

// confusableMap replaces Unicode code points that are visually identical to
// an ASCII character with their ASCII equivalent. Covers the common
// Cyrillic homoglyphs used to evade keyword/pattern matching, plus the
// fullwidth ASCII block.
var confusableMap = buildConfusableMap()

func buildConfusableMap() map[rune]rune {
	m := map[rune]rune{
		'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p',
		'с': 'c', 'у': 'y', 'х': 'x', 'і': 'i',
		'ј': 'j', 'һ': 'h', 'ѕ': 's', 'т': 't',
		'н': 'h', 'в': 'b', 'м': 'm',
		'А': 'A', 'В': 'B', 'Е': 'E', 'К': 'K',
		'М': 'M', 'Н': 'H', 'О': 'O', 'Р': 'P',
		'С': 'C', 'Т': 'T', 'Х': 'X',
	}
	// Fullwidth ASCII (U+FF01..U+FF5E) maps onto '!'..'~'.
	for i := rune(0); i < 94; i++ {
		m[0xFF01+i] = 0x21 + i
	}
	return m
}

// NormalizeUnicode applies NFC normalization followed by confusable
// substitution, returning the transformed text and whether anything changed.
func NormalizeUnicode(text string) (normalized string, changed bool) {
	nfc := norm.NFC.String(text)

	confusableChanged := false
	out := make([]rune, 0, len(nfc))
	for _, r := range nfc {
		if repl, ok := confusableMap[r]; ok {
			out = append(out, repl)
			confusableChanged = true
			continue
		}
		out = append(out, r)
	}

	normalized = string(out)
	changed = nfc != text || confusableChanged
	return normalized, changed
}
