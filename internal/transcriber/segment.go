package transcriber

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Abbreviation guards for sentence splitting: a terminator is not a
// sentence boundary when the preceding text ends in a mid-dotted
// abbreviation ("U.S.") or a title-style short form ("Mr.").
var (
	abbrevInitialRe = regexp.MustCompile(`[\p{L}\p{N}_]\.[\p{L}\p{N}_].\z`)
	abbrevTitleRe   = regexp.MustCompile(`\p{Lu}\p{Ll}\.\z`)
)

var wordRunRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// SplitIntoSentences splits text at whitespace preceded by a sentence
// terminator (".", "?", "!" or a newline), skipping boundaries that look
// like abbreviations. This is a best-effort heuristic, not a grammatically
// exact sentence detector. Results are trimmed and empty pieces dropped.
func SplitIntoSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if i == 0 || !unicode.IsSpace(r) {
			continue
		}
		prefix := text[:i]
		last, _ := utf8.DecodeLastRuneInString(prefix)
		if last != '.' && last != '?' && last != '!' && last != '\n' {
			continue
		}
		if abbrevInitialRe.MatchString(prefix) || abbrevTitleRe.MatchString(prefix) {
			continue
		}
		if sentence := strings.TrimSpace(text[start:i]); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + utf8.RuneLen(r)
	}
	if sentence := strings.TrimSpace(text[start:]); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}

// SplitSentenceIntoWords extracts the word tokens of a sentence in order,
// dropping punctuation and whitespace. This feeds the review cursor only;
// sentence reconstruction always goes through the lossless tokenizer.
func SplitSentenceIntoWords(sentence string) []string {
	return wordRunRe.FindAllString(sentence, -1)
}
