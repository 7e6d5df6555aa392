package dictionary

import (
	"fmt"
	"testing"

	"codeberg.org/snonux/piscribe/internal/testutil"
)

func TestEditEntryUpdatesExisting(t *testing.T) {
	store := openTestStore(t)

	// Keep the whole word, set a new L1 form.
	cons := testutil.NewScriptedConsole("", "thë")
	editor := NewEditor(store, cons, nil, []string{"L1"})

	if err := editor.EditEntry("The"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	form, ok := store.PhoneticForm("the", "L1")
	if !ok || form != "thë" {
		t.Errorf("L1 form after edit = %q (%v), want 'thë'", form, ok)
	}
}

func TestEditEntryBlankKeepsCurrent(t *testing.T) {
	store := openTestStore(t)

	cons := testutil.NewScriptedConsole("", "")
	editor := NewEditor(store, cons, nil, []string{"L1"})

	if err := editor.EditEntry("the"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	form, ok := store.PhoneticForm("the", "L1")
	if !ok || form != "the̬" {
		t.Errorf("L1 form changed by blank input: %q (%v)", form, ok)
	}
}

func TestEditEntryDashClearsForm(t *testing.T) {
	store := openTestStore(t)

	cons := testutil.NewScriptedConsole("", "-")
	editor := NewEditor(store, cons, nil, []string{"L1"})

	if err := editor.EditEntry("the"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	if _, ok := store.PhoneticForm("the", "L1"); ok {
		t.Error("cleared form should not resolve")
	}
}

func TestEditEntryCreatesMissing(t *testing.T) {
	store := openTestStore(t)

	cons := testutil.NewScriptedConsole("cat", "kat")
	editor := NewEditor(store, cons, nil, []string{"L1"})

	if err := editor.EditEntry("CAT"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	entry, ok := store.GetEntry("cat")
	if !ok {
		t.Fatal("new entry not created")
	}
	if entry.Whole != "cat" {
		t.Errorf("Whole = %q, want 'cat'", entry.Whole)
	}
	form, ok := entry.Form("L1")
	if !ok || form != "kat" {
		t.Errorf("L1 form = %q (%v), want 'kat'", form, ok)
	}
	if !cons.Contains("No entry for 'cat' yet, creating one") {
		t.Errorf("missing creation notice, output: %#v", cons.Lines)
	}
}

func TestEditEntryShowsSuggestion(t *testing.T) {
	store := openTestStore(t)

	suggest := func(word, variation string) (string, error) {
		if word != "cat" || variation != "L1" {
			return "", fmt.Errorf("unexpected suggestion request %s/%s", word, variation)
		}
		return "kat", nil
	}

	// Accept the suggestion by typing it in.
	cons := testutil.NewScriptedConsole("", "kat")
	editor := NewEditor(store, cons, suggest, []string{"L1"})

	if err := editor.EditEntry("cat"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	if !cons.Contains("Suggested L1 form: kat") {
		t.Errorf("suggestion not shown, output: %#v", cons.Lines)
	}
	form, ok := store.PhoneticForm("cat", "L1")
	if !ok || form != "kat" {
		t.Errorf("L1 form = %q (%v), want 'kat'", form, ok)
	}
}

func TestEditEntryOffersEntryVariations(t *testing.T) {
	store := openTestStore(t)

	entry, _ := store.GetEntry("the")
	entry.SetForm("L2", "thë")
	if err := store.Put("the", entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Prompted for whole word, then L1, then the entry's own L2.
	cons := testutil.NewScriptedConsole("", "", "")
	editor := NewEditor(store, cons, nil, []string{"L1"})

	if err := editor.EditEntry("the"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	if len(cons.Prompts) != 3 {
		t.Errorf("expected 3 prompts (whole, L1, L2), got %d: %#v", len(cons.Prompts), cons.Prompts)
	}
}
