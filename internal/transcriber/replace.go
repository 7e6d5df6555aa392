package transcriber

import "strings"

// ReplaceWholeWord replaces every whole-word occurrence of word in text,
// matching case-insensitively and adapting the replacement to the casing of
// each matched occurrence. Whole-word matching is token based, so "the" is
// never replaced inside "theater". This is the one replace primitive shared
// by the preliminary pass and the interactive global replace, keeping the
// case rules identical everywhere.
func ReplaceWholeWord(text, word, replacement string) string {
	if word == "" {
		return text
	}
	tokens := tokenize(text)
	for i, tok := range tokens {
		if isWordToken(tok) && strings.EqualFold(tok, word) {
			tokens[i] = adaptCase(tok, replacement)
		}
	}
	return strings.Join(tokens, "")
}

// HighlightWord wraps the first whole-word occurrence of word in sentence
// as >word< for display during interactive review. The sentence is returned
// unchanged when the word does not occur as a whole token.
func HighlightWord(sentence, word string) string {
	tokens := tokenize(sentence)
	for i, tok := range tokens {
		if isWordToken(tok) && tok == word {
			tokens[i] = ">" + tok + "<"
			break
		}
	}
	return strings.Join(tokens, "")
}
