package processor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/piscribe/internal/cli"
	"codeberg.org/snonux/piscribe/internal/console"
	"codeberg.org/snonux/piscribe/internal/dictionary"
	"codeberg.org/snonux/piscribe/internal/review"
	"codeberg.org/snonux/piscribe/internal/suggest"
	"codeberg.org/snonux/piscribe/internal/transcriber"
)

// Processor wires the CLI flags to the dictionary store, the batch
// transcription pipeline and the interactive review loop.
type Processor struct {
	flags   *cli.Flags
	console console.Console
	stdin   io.Reader
	stdout  io.Writer
}

// NewProcessor creates a processor bound to the real terminal.
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:   flags,
		console: console.NewTerminal(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
}

// NewProcessorWith creates a processor over explicit I/O, used by tests to
// script a whole run.
func NewProcessorWith(flags *cli.Flags, cons console.Console, stdin io.Reader, stdout io.Writer) *Processor {
	return &Processor{flags: flags, console: cons, stdin: stdin, stdout: stdout}
}

// Run executes one piscribe invocation: dictionary maintenance when an
// import or export flag is set, otherwise transcription of the input text.
func (p *Processor) Run(args []string) error {
	store, err := dictionary.Open(p.flags.DictionaryPath, transcriber.PreliminaryReplacements())
	if err != nil {
		return err
	}
	defer store.Close()

	if p.flags.ImportFile != "" {
		count, err := store.ImportJSON(p.flags.ImportFile, p.flags.ReplaceOnImport)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.stdout, "Imported %d dictionary entries from %s\n", count, p.flags.ImportFile)
		return nil
	}
	if p.flags.ExportFile != "" {
		if err := store.ExportJSON(p.flags.ExportFile); err != nil {
			return err
		}
		fmt.Fprintf(p.stdout, "Exported %d dictionary entries to %s\n", store.Len(), p.flags.ExportFile)
		return nil
	}

	text, err := p.readInput(args)
	if err != nil {
		return err
	}

	var output string
	if p.flags.Interactive {
		output = p.reviewInteractively(store, text)
	} else {
		output = transcriber.New(store).TranscribeVariation(text, p.variation())
	}
	return p.writeOutput(output)
}

// reviewInteractively splits the text into sentences, walks them with the
// review engine and joins the reviewed sentences one per line.
func (p *Processor) reviewInteractively(store *dictionary.Store, text string) string {
	sentences := transcriber.SplitIntoSentences(text)

	var suggestFn dictionary.SuggestFunc
	if suggester := suggest.New(cli.GetOpenAIKey()); suggester.Enabled() {
		suggestFn = suggester.Suggest
	}
	editor := dictionary.NewEditor(store, p.console, suggestFn, []string{p.variation()})

	engine := review.New(p.console, store, editor, p.variation())
	engine.Run(sentences, p.flags.StartSentence)

	return strings.Join(sentences, "\n")
}

func (p *Processor) variation() string {
	if p.flags.Variation != "" {
		return p.flags.Variation
	}
	return transcriber.DefaultVariation
}

func (p *Processor) readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(p.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func (p *Processor) writeOutput(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if p.flags.OutputFile != "" {
		if err := os.WriteFile(p.flags.OutputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(p.stdout, text)
	return err
}
