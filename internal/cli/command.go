package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/piscribe/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "piscribe [file]",
		Short: "Standard English to PI transcription",
		Long: `piscribe transcribes Standard English text into the PI phonemic
notation using a local pronunciation dictionary.

Text is read from the given file, or from stdin when no file is given.
Batch mode transcribes everything in one pass; interactive mode walks
the text word by word so every substitution can be reviewed, edited or
customized.

Examples:
  piscribe chapter.txt                 # Batch transcription to stdout
  piscribe -i chapter.txt              # Interactive per-word review
  piscribe --variation L2 chapter.txt  # Use the L2 dictionary column
  piscribe --import words.json         # Merge a JSON dictionary file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default dictionary location matches the state directory layout used
	// for config: ~/.local/state/piscribe/pi.db
	home, _ := os.UserHomeDir()
	defaultDict := filepath.Join(home, ".local", "state", "piscribe", "pi.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.piscribe.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.DictionaryPath, "dictionary", "d", defaultDict, "PI dictionary database file")
	cmd.Flags().StringVarP(&flags.Variation, "variation", "v", flags.Variation, "Transcription variation (dictionary column)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write result to file instead of stdout")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Review each word interactively")
	cmd.Flags().IntVar(&flags.StartSentence, "start-sentence", 0, "Sentence index to start interactive review at")
	cmd.Flags().StringVar(&flags.ImportFile, "import", "", "Merge entries from a JSON dictionary file and exit")
	cmd.Flags().StringVar(&flags.ExportFile, "export", "", "Export the dictionary to a JSON file and exit")
	cmd.Flags().BoolVar(&flags.ReplaceOnImport, "replace-on-import", false, "Let imported entries overwrite existing ones")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dictionary.path", cmd.Flags().Lookup("dictionary"))
	viper.BindPFlag("transcription.variation", cmd.Flags().Lookup("variation"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".piscribe" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".piscribe")
	}

	// Environment variables
	viper.SetEnvPrefix("PISCRIBE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}
