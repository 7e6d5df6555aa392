package processor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/piscribe/internal/cli"
	"codeberg.org/snonux/piscribe/internal/testutil"
)

func newTestFlags(t *testing.T) *cli.Flags {
	t.Helper()

	flags := cli.NewFlags()
	flags.DictionaryPath = filepath.Join(t.TempDir(), "pi.db")
	return flags
}

func importEntries(t *testing.T, flags *cli.Flags, entriesJSON string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.json")
	testutil.CreateTestFile(t, path, []byte(entriesJSON))

	importFlags := *flags
	importFlags.ImportFile = path
	var out bytes.Buffer
	p := NewProcessorWith(&importFlags, testutil.NewScriptedConsole(), strings.NewReader(""), &out)
	if err := p.Run(nil); err != nil {
		t.Fatalf("import run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Imported") {
		t.Errorf("missing import summary: %q", out.String())
	}
}

func TestRunBatchTranscription(t *testing.T) {
	flags := newTestFlags(t)
	importEntries(t, flags, `{"cat": {"whole": "cat", "PI": {"L1": "kat"}}}`)

	var out bytes.Buffer
	p := NewProcessorWith(flags, testutil.NewScriptedConsole(), strings.NewReader("The cat and cats."), &out)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "The̬ kat and kats.\n"
	if got := out.String(); got != want {
		t.Errorf("batch output = %q, want %q", got, want)
	}
}

func TestRunBatchFromFile(t *testing.T) {
	flags := newTestFlags(t)

	input := filepath.Join(t.TempDir(), "in.txt")
	testutil.CreateTestFile(t, input, []byte("for you"))

	var out bytes.Buffer
	p := NewProcessorWith(flags, testutil.NewScriptedConsole(), strings.NewReader(""), &out)
	if err := p.Run([]string{input}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := out.String(); got != "for yöu\n" {
		t.Errorf("batch output = %q, want %q", got, "for yöu\n")
	}
}

func TestRunMissingInputFile(t *testing.T) {
	flags := newTestFlags(t)

	p := NewProcessorWith(flags, testutil.NewScriptedConsole(), strings.NewReader(""), &bytes.Buffer{})
	if err := p.Run([]string{filepath.Join(t.TempDir(), "nope.txt")}); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	flags := newTestFlags(t)
	flags.OutputFile = filepath.Join(t.TempDir(), "out.txt")

	var out bytes.Buffer
	p := NewProcessorWith(flags, testutil.NewScriptedConsole(), strings.NewReader("the end"), &out)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(flags.OutputFile)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if got := string(data); got != "the̬ end\n" {
		t.Errorf("output file = %q, want %q", got, "the̬ end\n")
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty when writing to a file, got %q", out.String())
	}
}

func TestRunExport(t *testing.T) {
	flags := newTestFlags(t)
	flags.ExportFile = filepath.Join(t.TempDir(), "export.json")

	var out bytes.Buffer
	p := NewProcessorWith(flags, testutil.NewScriptedConsole(), strings.NewReader(""), &out)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(flags.ExportFile)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	// The preliminary seed entries are always present.
	if !strings.Contains(string(data), "the̬") {
		t.Errorf("export missing seeded entries: %s", data)
	}
}

func TestRunInteractiveQuitKeepsSentences(t *testing.T) {
	flags := newTestFlags(t)
	flags.Interactive = true

	cons := testutil.NewScriptedConsole("q")
	var out bytes.Buffer
	p := NewProcessorWith(flags, cons, strings.NewReader("Hello there. Bye now."), &out)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "Hello there.\nBye now.\n"
	if got := out.String(); got != want {
		t.Errorf("interactive output = %q, want %q", got, want)
	}
}

func TestRunInteractiveAcceptPropagates(t *testing.T) {
	flags := newTestFlags(t)
	flags.Interactive = true

	// "the" is seeded from the preliminary replacements, so accepting the
	// first word rewrites it in every sentence.
	cons := testutil.NewScriptedConsole("a", "q")
	var out bytes.Buffer
	p := NewProcessorWith(flags, cons, strings.NewReader("the word. the again."), &out)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "the̬ word.\nthe̬ again.\n"
	if got := out.String(); got != want {
		t.Errorf("interactive output = %q, want %q", got, want)
	}
}
