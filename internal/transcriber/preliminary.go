package transcriber

// PreliminaryReplacements returns the fixed mapping of common function words
// to their PI forms. These are applied before any dictionary lookup and are
// not user editable at runtime. The returned map is a fresh copy, so callers
// may hold on to it without aliasing the transcriber's own table.
func PreliminaryReplacements() map[string]string {
	return map[string]string{
		"the":  "the̬",
		"a":    "a̬",
		"an":   "a̬n",
		"of":   "‹o̬v›",
		"to":   "to̬",
		"you":  "yöu",
		"this": "thiṣ",
		"and":  "and",
		"for":  "for",
		"from": "fro̬m",
	}
}

// PerformPreliminaryReplacements applies the fixed function-word mapping to
// text, whole-word and case-insensitively, preserving the casing of each
// matched occurrence.
func (t *Transcriber) PerformPreliminaryReplacements(text string) string {
	for word, replacement := range t.preliminary {
		text = ReplaceWholeWord(text, word, replacement)
	}
	return text
}
