package dictionary

import (
	"sort"
	"strings"
)

// Entry is one PI dictionary row: the whole (base) word plus a mapping from
// variation name to phonetic form. A nil form means the variation is listed
// but not defined; lookup treats that the same as absent.
type Entry struct {
	Whole string             `json:"whole"`
	PI    map[string]*string `json:"PI"`
}

// Form returns the phonetic form for variation. The second return is false
// when the variation is absent, nil or empty.
func (e Entry) Form(variation string) (string, bool) {
	form, ok := e.PI[variation]
	if !ok || form == nil || *form == "" {
		return "", false
	}
	return *form, true
}

// SetForm records a phonetic form for variation.
func (e *Entry) SetForm(variation, form string) {
	if e.PI == nil {
		e.PI = make(map[string]*string)
	}
	f := form
	e.PI[variation] = &f
}

// ClearForm marks variation as undefined without dropping it from the entry.
func (e *Entry) ClearForm(variation string) {
	if e.PI == nil {
		e.PI = make(map[string]*string)
	}
	e.PI[variation] = nil
}

// Variations returns the entry's variation names, sorted.
func (e Entry) Variations() []string {
	names := make([]string, 0, len(e.PI))
	for name := range e.PI {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clone deep-copies the entry so callers can mutate it without touching
// the store snapshot it came from.
func (e Entry) clone() Entry {
	pi := make(map[string]*string, len(e.PI))
	for variation, form := range e.PI {
		if form == nil {
			pi[variation] = nil
			continue
		}
		f := *form
		pi[variation] = &f
	}
	return Entry{Whole: e.Whole, PI: pi}
}

// Normalize maps a word to its dictionary key form.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
