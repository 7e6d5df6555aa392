package transcriber

import "strings"

// applySuffix rewrites word tokens ending in exactly one trailing "s" whose
// stem has a phonetic form for variation. The rewritten token is the
// case-adapted phonetic stem with a literal "s" appended. Double-s endings
// like "glass" are never touched. Stems are looked up against the
// dictionary, not against already substituted text, which is why this pass
// runs after the variation pass in the pipeline.
func applySuffix(text string, dict Dictionary, variation string) string {
	tokens := tokenize(text)
	for i, tok := range tokens {
		if !isWordToken(tok) {
			continue
		}
		tokens[i] = rewriteSuffix(tok, dict, variation)
	}
	return strings.Join(tokens, "")
}

func rewriteSuffix(word string, dict Dictionary, variation string) string {
	if !strings.HasSuffix(word, "s") || strings.HasSuffix(word, "ss") {
		return word
	}
	stem := word[:len(word)-1]
	if stem == "" {
		return word
	}
	form, ok := dict.PhoneticForm(strings.ToLower(stem), variation)
	if !ok {
		return word
	}
	return adaptCase(stem, form) + "s"
}
