package dictionary

import (
	"fmt"

	"codeberg.org/snonux/piscribe/internal/console"
)

// SuggestFunc proposes a phonetic form for a word and variation. A nil
// SuggestFunc means no suggestion backend is configured.
type SuggestFunc func(word, variation string) (string, error)

// Editor drives the interactive dictionary entry editor used by the
// review loop's 'e' command.
type Editor struct {
	store      *Store
	console    console.Console
	suggest    SuggestFunc
	variations []string
}

// NewEditor creates an Editor over store. variations lists the variation
// columns offered when editing; columns already present on an entry are
// always offered too. An empty list defaults to L1.
func NewEditor(store *Store, cons console.Console, suggest SuggestFunc, variations []string) *Editor {
	if len(variations) == 0 {
		variations = []string{"L1"}
	}
	return &Editor{
		store:      store,
		console:    cons,
		suggest:    suggest,
		variations: variations,
	}
}

// EditEntry interactively edits, or creates, the entry for word and writes
// it back to the store. Blank input keeps the current value; entering "-"
// clears a variation form. Callers must Reload the store snapshot they
// transcribe with afterwards.
func (ed *Editor) EditEntry(word string) error {
	key := Normalize(word)
	entry, ok := ed.store.GetEntry(key)
	if ok {
		ed.console.PrintWithSpacing(fmt.Sprintf("Editing dictionary entry for '%s'", entry.Whole))
	} else {
		entry = Entry{Whole: key, PI: make(map[string]*string)}
		ed.console.PrintWithSpacing(fmt.Sprintf("No entry for '%s' yet, creating one", key))
	}

	if whole := ed.console.Input(fmt.Sprintf("Whole word [%s]: ", entry.Whole)); whole != "" {
		entry.Whole = whole
	}

	for _, variation := range ed.variationList(entry) {
		current, _ := entry.Form(variation)
		if current == "" && ed.suggest != nil {
			if suggestion, err := ed.suggest(key, variation); err == nil && suggestion != "" {
				ed.console.Print(fmt.Sprintf("Suggested %s form: %s", variation, suggestion))
			}
		}
		input := ed.console.Input(fmt.Sprintf("%s form [%s] (blank keeps, '-' clears): ", variation, current))
		switch input {
		case "":
		case "-":
			entry.ClearForm(variation)
		default:
			entry.SetForm(variation, input)
		}
	}

	return ed.store.Put(key, entry)
}

func (ed *Editor) variationList(entry Entry) []string {
	seen := make(map[string]bool)
	var list []string
	for _, v := range ed.variations {
		if !seen[v] {
			seen[v] = true
			list = append(list, v)
		}
	}
	for _, v := range entry.Variations() {
		if !seen[v] {
			seen[v] = true
			list = append(list, v)
		}
	}
	return list
}
