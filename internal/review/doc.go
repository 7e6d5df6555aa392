// Package review implements the interactive per-word review loop for PI
// transcription. It walks a shared sentence list with a sentence/word
// cursor, highlights the selected word, shows its dictionary entry and
// applies the user's accept, customize, skip and edit decisions. Accepted
// replacements propagate to every sentence, not just the current one.
package review
