package transcriber

import "strings"

// Dictionary is the slice of the PI dictionary the transcription passes
// need: a phonetic form per lowercase word and variation. A false second
// return means the word has no entry, or its entry does not define the
// variation; either way the word is left unchanged.
type Dictionary interface {
	PhoneticForm(word, variation string) (string, bool)
}

// applyVariation replaces every word token whose lowercased form has a
// phonetic form for variation, adapting each replacement to the original
// token's casing. Whitespace and punctuation tokens pass through untouched,
// so the output differs from the input only inside replaced words.
func applyVariation(text string, dict Dictionary, variation string) string {
	tokens := tokenize(text)
	for i, tok := range tokens {
		if !isWordToken(tok) {
			continue
		}
		if form, ok := dict.PhoneticForm(strings.ToLower(tok), variation); ok {
			tokens[i] = adaptCase(tok, form)
		}
	}
	return strings.Join(tokens, "")
}
