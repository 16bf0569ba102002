// Package cli — complex.go implements the "ppgen complex" command.
//
// Complex mode trades memorability for density: pinyin words are
// separated by single random symbol characters (specials and digits)
// and two more symbol characters are appended, producing a password
// that satisfies composition rules many sites still enforce.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/ppgen/internal/config"
	"github.com/mmr-tortoise/ppgen/internal/generate"
	"github.com/mmr-tortoise/ppgen/internal/model"
)

// defaultComplexMinLength is the minimum password length when
// --min-length is not given.
const defaultComplexMinLength = 12

// complexFlags holds the flag values for the complex command.
type complexFlags struct {
	minLength  int    // --min-length: minimum total password length
	capitalize bool   // --capitalize: capitalize every word
	hint       bool   // --hint: print the hanzi memory hint too
	wordlist   string // --wordlist: external wordlist file
}

// NewComplexCommand creates the "complex" cobra command.
func NewComplexCommand() *cobra.Command {
	flags := &complexFlags{}

	cmd := &cobra.Command{
		Use:   "complex",
		Short: "Generate a dense password with symbol separators",
		Long: `Generate a password of pinyin words joined by random symbol characters
(!@#*~ and digits), with two trailing symbol characters. Words are drawn
until the password reaches the minimum length.

Examples:
  ppgen complex
  ppgen complex --min-length 16 --capitalize
  ppgen complex --hint`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplex(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.minLength, "min-length", defaultComplexMinLength, "Minimum password length")
	cmd.Flags().BoolVarP(&flags.capitalize, "capitalize", "c", false, "Capitalize the first letter of each word")
	cmd.Flags().BoolVar(&flags.hint, "hint", false, "Also print the hanzi memory hint")
	cmd.Flags().StringVar(&flags.wordlist, "wordlist", "", "Path to an external wordlist file")

	return cmd
}

// runComplex is the main logic function for the complex command.
func runComplex(cmd *cobra.Command, flags *complexFlags) error {
	// Config-file defaults: only minLength and capitalize apply to
	// this mode; separators here are random by definition.
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	if path != "" {
		VerboseLog("Using defaults from %s", path)
		if !cmd.Flags().Changed("min-length") && cfg.MinLength > 0 {
			flags.minLength = cfg.MinLength
		}
		if !cmd.Flags().Changed("capitalize") && cfg.Capitalize {
			flags.capitalize = true
		}
	}

	list, err := loadWordlist(flags.wordlist)
	if err != nil {
		return err
	}
	VerboseLog("Wordlist loaded: %d entries", list.Len())

	req := &model.ComplexRequest{
		MinLength:  flags.minLength,
		Capitalize: flags.capitalize,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := generate.Complex(list, req)
	if err != nil {
		return err
	}
	VerboseLog("Entropy estimate: %.1f bits", result.EntropyBits)

	printResult(result, flags.hint)
	return nil
}
