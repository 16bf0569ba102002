// Package cli — passphrase.go implements the "ppgen passphrase" command.
//
// This is the primary user-facing operation. It loads the wordlist,
// merges the optional user defaults file with command-line flags,
// validates the resulting request, and hands it to the generator.
//
// Orchestration steps:
//  1. Load defaults from the config file (flags win over file values)
//  2. Load the wordlist (bundled or --wordlist)
//  3. Build and validate the PassphraseRequest
//  4. Generate and output (text or JSON)
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/ppgen/internal/config"
	"github.com/mmr-tortoise/ppgen/internal/generate"
	"github.com/mmr-tortoise/ppgen/internal/model"
	"github.com/mmr-tortoise/ppgen/internal/wordlist"
)

// passphraseFlags holds the flag values for the passphrase command.
// These are bound to cobra flags in NewPassphraseCommand.
type passphraseFlags struct {
	words      int    // --words: number of words to draw
	minLength  int    // --min-length: draw until this pinyin length instead
	charCount  int    // --chars: restrict pool to words of this many hanzi
	separator  string // --separator: joining separator
	capitalize bool   // --capitalize: random per-word capitalization
	digits     int    // --digits: interspersed random digit tokens
	hint       bool   // --hint: print the hanzi memory hint too
	wordlist   string // --wordlist: external wordlist file
}

// NewPassphraseCommand creates the "passphrase" cobra command.
func NewPassphraseCommand() *cobra.Command {
	flags := &passphraseFlags{}

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a pinyin passphrase",
		Long: `Generate a passphrase of pinyin words drawn independently and uniformly
at random (with replacement) from the wordlist.

By default 4 words are drawn and joined with hyphens. With --min-length,
words are drawn until their combined pinyin length reaches the minimum
instead. Each enabled transform raises the reported entropy estimate.

Examples:
  ppgen passphrase
  ppgen passphrase --words 6 --separator " "
  ppgen passphrase --chars 2 --capitalize --digits 2
  ppgen passphrase --min-length 20 --hint`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so errors reach the Execute
		// error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassphrase(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.words, "words", "w", model.DefaultWordCount, "Number of words to draw")
	cmd.Flags().IntVar(&flags.minLength, "min-length", 0, "Draw words until this combined pinyin length (overrides --words)")
	cmd.Flags().IntVar(&flags.charCount, "chars", 0, "Only use words with this many hanzi characters (0 = any)")
	cmd.Flags().StringVarP(&flags.separator, "separator", "s", model.DefaultSeparator, "Separator between words")
	cmd.Flags().BoolVarP(&flags.capitalize, "capitalize", "c", false, "Randomly capitalize the first letter of each word")
	cmd.Flags().IntVarP(&flags.digits, "digits", "d", 0, "Number of random digits to intersperse")
	cmd.Flags().BoolVar(&flags.hint, "hint", false, "Also print the hanzi memory hint")
	cmd.Flags().StringVar(&flags.wordlist, "wordlist", "", "Path to an external wordlist file")

	return cmd
}

// runPassphrase is the main orchestration function for the passphrase
// command.
func runPassphrase(cmd *cobra.Command, flags *passphraseFlags) error {
	if cmd.Flags().Changed("words") && cmd.Flags().Changed("min-length") {
		return model.NewCLIError(model.ExitConfigError, "--words and --min-length are mutually exclusive")
	}

	// Step 1: apply config-file defaults where flags were not set.
	if err := applyConfigDefaults(cmd, flags); err != nil {
		return err
	}

	// Step 2: load the candidate pool.
	list, err := loadWordlist(flags.wordlist)
	if err != nil {
		return err
	}
	VerboseLog("Wordlist loaded: %d entries", list.Len())

	// Step 3: build and validate the request.
	req := &model.PassphraseRequest{
		Words:      flags.words,
		MinLength:  flags.minLength,
		CharCount:  flags.charCount,
		Separator:  flags.separator,
		Capitalize: flags.capitalize,
		Digits:     flags.digits,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	// Step 4: generate and print.
	result, err := generate.Passphrase(list, req)
	if err != nil {
		return err
	}
	VerboseLog("Entropy estimate: %.1f bits", result.EntropyBits)

	printResult(result, flags.hint)
	return nil
}

// applyConfigDefaults loads the user defaults file and copies its
// values into flags the user did not set explicitly. Explicit flags
// always win; the file only fills gaps.
func applyConfigDefaults(cmd *cobra.Command, flags *passphraseFlags) error {
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	VerboseLog("Using defaults from %s", path)

	if !cmd.Flags().Changed("words") && cfg.Words > 0 {
		flags.words = cfg.Words
	}
	if !cmd.Flags().Changed("chars") && cfg.CharCount > 0 {
		flags.charCount = cfg.CharCount
	}
	if !cmd.Flags().Changed("separator") && cfg.Separator != "" {
		flags.separator = cfg.Separator
	}
	if !cmd.Flags().Changed("capitalize") && cfg.Capitalize {
		flags.capitalize = true
	}
	if !cmd.Flags().Changed("digits") && cfg.Digits > 0 {
		flags.digits = cfg.Digits
	}
	return nil
}

// loadWordlist returns the external wordlist when a path was given,
// otherwise the bundled one.
func loadWordlist(path string) (wordlist.List, error) {
	if path != "" {
		VerboseLog("Loading external wordlist: %s", path)
		return wordlist.LoadFile(path)
	}
	return wordlist.Load()
}

// printResult outputs a generation result in text or JSON format.
// In text mode the passphrase goes to stdout alone on the first line
// so it can be piped; hint and entropy follow as annotated lines.
func printResult(result *model.Result, showHint bool) {
	if IsJSONOutput() {
		out := struct {
			Passphrase  string  `json:"passphrase"`
			Hint        string  `json:"hint,omitempty"`
			EntropyBits float64 `json:"entropyBits"`
		}{
			Passphrase:  result.Passphrase,
			EntropyBits: result.EntropyBits,
		}
		if showHint {
			out.Hint = result.Hint
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println(result.Passphrase)
	if showHint {
		fmt.Printf("Hint:    %s\n", result.Hint)
	}
	fmt.Printf("Entropy: %.1f bits\n", result.EntropyBits)
}
