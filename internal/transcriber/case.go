package transcriber

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// adaptCase maps replacement onto the casing pattern of original: a fully
// uppercase original yields an uppercase replacement, an original with an
// uppercase first letter capitalizes exactly the first rune of the
// replacement, anything else returns the replacement unchanged.
func adaptCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if isAllUpper(original) {
		return strings.ToUpper(replacement)
	}
	if first, _ := utf8.DecodeRuneInString(original); unicode.IsUpper(first) {
		return upperFirst(replacement)
	}
	return replacement
}

// isAllUpper reports whether s contains at least one letter and no
// lowercase letters, matching the semantics of Python's str.isupper.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		hasLetter = true
	}
	return hasLetter
}

// upperFirst uppercases the first rune only. The rest of the string is
// left alone so multi-word phonetic forms are not title-cased.
func upperFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
