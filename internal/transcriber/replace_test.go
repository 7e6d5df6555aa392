package transcriber

import (
	"strings"
	"testing"
)

func TestReplaceWholeWord(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		word        string
		replacement string
		expected    string
	}{
		{"simple", "the cat", "cat", "kat", "the kat"},
		{"case insensitive", "Cat and CAT and cat", "cat", "kat", "Kat and KAT and kat"},
		{"not inside words", "the theater", "the", "the̬", "the̬ theater"},
		{"punctuation boundary", "cat, cat.", "cat", "kat", "kat, kat."},
		{"no match", "dog", "cat", "kat", "dog"},
		{"empty word", "dog", "", "kat", "dog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceWholeWord(tt.text, tt.word, tt.replacement); got != tt.expected {
				t.Errorf("ReplaceWholeWord(%q, %q, %q) = %q, want %q",
					tt.text, tt.word, tt.replacement, got, tt.expected)
			}
		})
	}
}

func TestHighlightWord(t *testing.T) {
	got := HighlightWord("the cat sat on the cat", "cat")
	want := "the >cat< sat on the cat"
	if got != want {
		t.Errorf("HighlightWord = %q, want %q", got, want)
	}

	// Whole words only: "the" inside "theater" is not a match.
	got = HighlightWord("theater the", "the")
	want = "theater >the<"
	if got != want {
		t.Errorf("HighlightWord = %q, want %q", got, want)
	}

	// Absent word leaves the sentence unchanged.
	if got := HighlightWord("the cat", "dog"); got != "the cat" {
		t.Errorf("HighlightWord on absent word = %q", got)
	}
}

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"The cat sat,  on the mat!",
		"  leading and trailing  ",
		"punctuation...everywhere?! (yes)",
		"diacritics: the̬ a̬n ‹o̬v›",
		"",
	}

	for _, input := range inputs {
		if got := strings.Join(tokenize(input), ""); got != input {
			t.Errorf("tokenize round trip changed %q to %q", input, got)
		}
	}
}

func TestIsWordToken(t *testing.T) {
	for _, word := range []string{"cat", "the̬", "a̬n", "x1", "_x"} {
		if !isWordToken(word) {
			t.Errorf("isWordToken(%q) = false, want true", word)
		}
	}
	for _, notWord := range []string{" ", ", ", "...", "‹›", ""} {
		if isWordToken(notWord) {
			t.Errorf("isWordToken(%q) = true, want false", notWord)
		}
	}
}
