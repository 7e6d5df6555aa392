package review

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/piscribe/internal/console"
	"codeberg.org/snonux/piscribe/internal/dictionary"
	"codeberg.org/snonux/piscribe/internal/transcriber"
)

// Dictionary is the dictionary surface the review loop needs.
type Dictionary interface {
	GetEntry(word string) (dictionary.Entry, bool)
	Reload() error
}

// EntryEditor opens the interactive editor for a dictionary word.
type EntryEditor interface {
	EditEntry(word string) error
}

const commandPrompt = "Options: (a)ccept, (n)ext (or hit 'Enter'), (p)revious, " +
	"(e)dit dictionary entry, (c)ustomize word, (s)kip sentence, (q)uit: "

// Engine is the review state machine. Its state is the cursor pair over
// the sentence list passed to Run; the engine itself only holds the
// collaborators and the selected variation.
type Engine struct {
	console   console.Console
	dict      Dictionary
	editor    EntryEditor
	variation string
}

// New creates a review Engine. An empty variation selects the default.
func New(cons console.Console, dict Dictionary, editor EntryEditor, variation string) *Engine {
	if variation == "" {
		variation = transcriber.DefaultVariation
	}
	return &Engine{console: cons, dict: dict, editor: editor, variation: variation}
}

// Run walks sentences word by word from startSentence, applying the user's
// per-word decisions. The sentence list is mutated in place. Run returns
// when the user quits or the cursor advances past the last word of the
// last sentence.
func (e *Engine) Run(sentences []string, startSentence int) {
	si := startSentence
	if si < 0 {
		si = 0
	}

	for si < len(sentences) {
		words := transcriber.SplitSentenceIntoWords(sentences[si])
		if len(words) == 0 {
			si++
			continue
		}
		wi := 0

		// resplit refreshes the word view of the current sentence after a
		// replacement or a sentence move.
		resplit := func() {
			words = transcriber.SplitSentenceIntoWords(sentences[si])
		}

		// advance moves the cursor one word forward, rolling over to the
		// next sentence at the boundary. Past the last sentence the word
		// list empties and both loops terminate.
		advance := func() {
			wi++
			if wi < len(words) {
				return
			}
			si++
			wi = 0
			if si < len(sentences) {
				resplit()
			} else {
				words = nil
			}
		}

		for wi >= 0 && wi < len(words) {
			word := words[wi]
			e.console.PrintWithSpacing(transcriber.HighlightWord(sentences[si], word))

			entry, found := e.dict.GetEntry(strings.ToLower(word))
			if found {
				e.console.PrintWithSpacing("PI Entry: " + entry.Whole)
				form, _ := entry.Form(e.variation)
				e.console.Print(fmt.Sprintf("%s word: %s", e.variation, form))
			} else {
				e.console.PrintWithSpacing("No PI entry found for this word.")
			}

			command := strings.ToLower(e.console.InputWithSpacing(commandPrompt))
			switch {
			case command == "a" && found:
				form, ok := entry.Form(e.variation)
				if !ok {
					e.console.PrintWithSpacing(fmt.Sprintf("No %s form defined for this word.", e.variation))
					continue
				}
				replaceInAll(sentences, word, form)
				e.console.PrintWithSpacing(fmt.Sprintf("All occurrences of '%s' replaced with '%s'", word, form))
				resplit()
				advance()

			case command == "n" || command == "":
				advance()

			case command == "p":
				if wi > 0 {
					wi--
				} else if si > 0 {
					si--
					resplit()
					wi = len(words) - 1
				}

			case command == "e":
				if err := e.editor.EditEntry(strings.ToLower(word)); err != nil {
					e.console.PrintWithSpacing(fmt.Sprintf("Edit failed: %v", err))
				} else if err := e.dict.Reload(); err != nil {
					e.console.PrintWithSpacing(fmt.Sprintf("Dictionary reload failed: %v", err))
				}
				// Cursor and word list stay put; the view catches up on
				// the next advance.

			case command == "c" && found:
				form, _ := entry.Form(e.variation)
				custom := e.console.Input(fmt.Sprintf("Enter a customized version for '%s': ", form))
				if custom == "" {
					custom = form
				}
				if custom == "" {
					e.console.PrintWithSpacing("No replacement given, word left unchanged.")
				} else {
					replaceInAll(sentences, word, custom)
					e.console.PrintWithSpacing(fmt.Sprintf("Word '%s' replaced with customized version '%s'", word, custom))
					resplit()
				}
				advance()

			case command == "s":
				si++
				wi = 0
				if si < len(sentences) {
					resplit()
				} else {
					words = nil
				}

			case command == "q":
				e.console.PrintWithSpacing("Exiting interactive transcription.")
				return

			default:
				e.console.PrintWithSpacing("Invalid input. Please choose 'a', 'n', '', 'p', 'e', 'c', 's', or 'q'.")
			}
		}
	}
}

// replaceInAll applies the case-preserving whole-word replacement to every
// sentence, so one accepted decision covers the whole text.
func replaceInAll(sentences []string, word, replacement string) {
	for i := range sentences {
		sentences[i] = transcriber.ReplaceWholeWord(sentences[i], word, replacement)
	}
}
