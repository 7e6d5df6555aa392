package transcriber

import "regexp"

// tokenRe splits text into maximal runs of word characters, punctuation or
// whitespace. Combining marks count as word characters so that PI forms
// like "the̬" stay a single token. Concatenating the tokens reproduces the
// input byte for byte.
var tokenRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]+|\s+`)

var wordTokenRe = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_]+$`)

func tokenize(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

func isWordToken(tok string) bool {
	return wordTokenRe.MatchString(tok)
}
