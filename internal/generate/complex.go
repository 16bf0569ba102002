package generate

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/ppgen/internal/model"
	"github.com/mmr-tortoise/ppgen/internal/wordlist"
)

// symbolAlphabet is the pool for complex-mode separator and tail
// characters: five specials plus the ten decimal digits, drawn
// uniformly so every character contributes log2(15) bits.
var symbolAlphabet = []rune("!@#*~0123456789")

// tailLength is the number of symbol characters appended after the
// last word in complex mode.
const tailLength = 2

// Complex generates a dense password: pinyin words separated by single
// symbol characters, with a two-character symbol tail. Words are drawn
// until the assembled password — pinyin, one separator between each
// pair of words, and the tail — reaches the minimum length.
func Complex(list wordlist.List, req *model.ComplexRequest) (*model.Result, error) {
	if list.Len() == 0 {
		return nil, model.NewCLIError(model.ExitWordlistError, "wordlist is empty")
	}

	var entries []wordlist.Entry
	total := 0
	// Projected final length: total pinyin + (len(entries)-1)
	// separators + tail. At least one word is always drawn.
	for len(entries) == 0 || total+len(entries)-1+tailLength < req.MinLength {
		e, err := drawEntry(list)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		total += len(e.Pinyin)
	}

	var pw, hint strings.Builder
	symbols := 0
	for i, e := range entries {
		word := e.Pinyin
		if req.Capitalize {
			word = capitalizeWord(word)
		}
		pw.WriteString(word)
		fmt.Fprintf(&hint, "%s(%s)", e.Hanzi, word)

		if i < len(entries)-1 {
			sep, err := randRune(symbolAlphabet)
			if err != nil {
				return nil, model.WrapCLIError(model.ExitGeneralError, "random source failed", err)
			}
			pw.WriteRune(sep)
			hint.WriteRune(sep)
			symbols++
		}
	}

	for i := 0; i < tailLength; i++ {
		c, err := randRune(symbolAlphabet)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "random source failed", err)
		}
		pw.WriteRune(c)
		hint.WriteRune(c)
		symbols++
	}

	return &model.Result{
		Passphrase:  pw.String(),
		Hint:        hint.String(),
		EntropyBits: ComplexBits(list.Len(), len(entries), symbols),
	}, nil
}
