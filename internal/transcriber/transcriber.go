package transcriber

// DefaultVariation is the dictionary column used when no variation is
// selected explicitly.
const DefaultVariation = "L1"

// Transcriber runs the full Standard English to PI pipeline against a
// dictionary snapshot. It holds no other state, so transcription is a pure
// function of (text, variation, dictionary contents).
type Transcriber struct {
	preliminary map[string]string
	dict        Dictionary
}

// New creates a Transcriber over dict using the fixed preliminary
// replacement table.
func New(dict Dictionary) *Transcriber {
	return &Transcriber{
		preliminary: PreliminaryReplacements(),
		dict:        dict,
	}
}

// Transcribe converts text to PI form using the default variation.
func (t *Transcriber) Transcribe(text string) string {
	return t.TranscribeVariation(text, DefaultVariation)
}

// TranscribeVariation converts text to PI form for the given variation:
// preliminary function-word replacements, then dictionary-driven variation
// substitution, then trailing-s suffix rewriting.
func (t *Transcriber) TranscribeVariation(text, variation string) string {
	processed := t.PerformPreliminaryReplacements(text)
	processed = applyVariation(processed, t.dict, variation)
	return applySuffix(processed, t.dict, variation)
}
