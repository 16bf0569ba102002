// Package cli — words.go implements the "ppgen words" command.
//
// The words command inspects the candidate pool: how many entries it
// holds, how the entries split by hanzi character count, and how many
// bits one uniform draw from each sub-pool is worth. An optional
// sample table shows entries with hanzi columns aligned by East Asian
// display width.
package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/mmr-tortoise/ppgen/internal/generate"
	"github.com/mmr-tortoise/ppgen/internal/model"
	"github.com/mmr-tortoise/ppgen/internal/wordlist"
)

// wordsFlags holds the flag values for the words command.
type wordsFlags struct {
	charCount int    // --chars: restrict to this character count
	limit     int    // --limit: number of sample entries to print
	wordlist  string // --wordlist: external wordlist file
}

// NewWordsCommand creates the "words" cobra command.
func NewWordsCommand() *cobra.Command {
	flags := &wordsFlags{}

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect the wordlist and its entropy per draw",
		Long: `Show wordlist statistics: total entries, sub-pool sizes per hanzi
character count, and the entropy (bits) of one uniform draw from each
sub-pool. With --limit, sample entries are listed as an aligned table.

Examples:
  ppgen words
  ppgen words --chars 2 --limit 10
  ppgen words --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(flags)
		},
	}

	cmd.Flags().IntVar(&flags.charCount, "chars", 0, "Only count words with this many hanzi characters (0 = any)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Print up to this many sample entries")
	cmd.Flags().StringVar(&flags.wordlist, "wordlist", "", "Path to an external wordlist file")

	return cmd
}

// runWords is the main logic function for the words command.
func runWords(flags *wordsFlags) error {
	list, err := loadWordlist(flags.wordlist)
	if err != nil {
		return err
	}

	pool := list.FilterCharCount(flags.charCount)
	if pool.Len() == 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("no words with %d characters in the wordlist", flags.charCount))
	}

	if IsJSONOutput() {
		printWordsJSON(list, pool, flags)
	} else {
		printWordsText(list, pool, flags)
	}
	return nil
}

// printWordsJSON outputs wordlist statistics as structured JSON.
func printWordsJSON(list, pool wordlist.List, flags *wordsFlags) {
	type poolJSON struct {
		CharCount   int     `json:"charCount"`
		Entries     int     `json:"entries"`
		BitsPerWord float64 `json:"bitsPerWord"`
	}

	out := struct {
		TotalEntries int              `json:"totalEntries"`
		Pools        []poolJSON       `json:"pools"`
		Samples      []wordlist.Entry `json:"samples,omitempty"`
	}{
		TotalEntries: list.Len(),
	}

	counts := list.CharCounts()
	for _, cc := range sortedCharCounts(list) {
		n := counts[cc]
		out.Pools = append(out.Pools, poolJSON{
			CharCount:   cc,
			Entries:     n,
			BitsPerWord: generate.WordBits(n),
		})
	}

	if flags.limit > 0 {
		out.Samples = sampleEntries(pool, flags.limit)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printWordsText outputs wordlist statistics as human-readable text.
func printWordsText(list, pool wordlist.List, flags *wordsFlags) {
	fmt.Printf("Wordlist: %d entries\n\n", list.Len())

	counts := list.CharCounts()
	fmt.Println("  Chars  Entries  Bits/word")
	for _, cc := range sortedCharCounts(list) {
		fmt.Printf("  %5d  %7d  %9.1f\n", cc, counts[cc], generate.WordBits(counts[cc]))
	}

	if flags.limit > 0 {
		samples := sampleEntries(pool, flags.limit)

		// Hanzi occupy two terminal cells per character, so the
		// column is padded by display width, not rune count.
		maxWidth := 0
		for _, e := range samples {
			if w := displayWidth(e.Hanzi); w > maxWidth {
				maxWidth = w
			}
		}

		fmt.Println()
		for _, e := range samples {
			pad := strings.Repeat(" ", maxWidth-displayWidth(e.Hanzi))
			fmt.Printf("  %s%s  %s\n", e.Hanzi, pad, e.Pinyin)
		}
	}
}

// sortedCharCounts returns the distinct character counts in the list
// in ascending order, for stable output.
func sortedCharCounts(list wordlist.List) []int {
	counts := list.CharCounts()
	keys := make([]int, 0, len(counts))
	for cc := range counts {
		keys = append(keys, cc)
	}
	sort.Ints(keys)
	return keys
}

// sampleEntries returns the first n entries of the pool. The list is
// in source order; this is an inspection aid, not a random sample.
func sampleEntries(pool wordlist.List, n int) []wordlist.Entry {
	if n > pool.Len() {
		n = pool.Len()
	}
	return pool[:n]
}

// displayWidth returns the number of terminal cells a string occupies,
// counting East Asian wide and fullwidth runes as two cells.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
