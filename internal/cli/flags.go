package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	DictionaryPath string
	Variation      string
	OutputFile     string

	// Interactive review flags
	Interactive   bool
	StartSentence int

	// Dictionary maintenance flags
	ImportFile      string
	ExportFile      string
	ReplaceOnImport bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Variation: "L1",
	}
}
