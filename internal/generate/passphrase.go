package generate

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/ppgen/internal/model"
	"github.com/mmr-tortoise/ppgen/internal/wordlist"
)

// token is one unit of passphrase output: either a drawn word or an
// interspersed digit. Keeping tokens paired with their hint form lets
// the hanzi hint mirror the passphrase token for token.
type token struct {
	text string // what appears in the passphrase
	hint string // what appears in the memory hint
}

// Passphrase generates a pinyin passphrase according to the request.
// The request must already be validated; the pool is filtered by the
// request's character count before drawing.
//
// Word-count mode draws exactly req.Words words. Min-length mode
// (req.MinLength > 0) draws words until their combined pinyin length
// reaches the minimum. Both modes draw independently and uniformly
// with replacement.
func Passphrase(list wordlist.List, req *model.PassphraseRequest) (*model.Result, error) {
	pool := list.FilterCharCount(req.CharCount)
	if pool.Len() == 0 {
		// An empty filtered pool is a bad filter; an empty list is
		// missing data. The two get different exit codes.
		if req.CharCount > 0 && list.Len() > 0 {
			return nil, model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("no words with %d characters in the wordlist", req.CharCount))
		}
		return nil, model.NewCLIError(model.ExitWordlistError, "wordlist is empty")
	}

	entries, err := drawWords(pool, req)
	if err != nil {
		return nil, err
	}

	tokens := make([]token, 0, len(entries)+req.Digits)
	for _, e := range entries {
		word := e.Pinyin
		if req.Capitalize {
			// A coin flip per word: capitalization only adds
			// entropy when an attacker cannot predict it.
			up, flipErr := coinFlip()
			if flipErr != nil {
				return nil, model.WrapCLIError(model.ExitGeneralError, "random source failed", flipErr)
			}
			if up {
				word = capitalizeWord(word)
			}
		}
		tokens = append(tokens, token{
			text: word,
			hint: fmt.Sprintf("%s(%s)", e.Hanzi, word),
		})
	}

	tokens, err = intersperseDigits(tokens, req.Digits)
	if err != nil {
		return nil, err
	}

	return &model.Result{
		Passphrase:  joinTokens(tokens, req.Separator, false),
		Hint:        joinTokens(tokens, req.Separator, true),
		EntropyBits: PassphraseBits(pool.Len(), len(entries), req.Capitalize, req.Digits),
	}, nil
}

// drawWords performs the uniform-with-replacement draws for either
// generation mode.
func drawWords(pool wordlist.List, req *model.PassphraseRequest) ([]wordlist.Entry, error) {
	var entries []wordlist.Entry

	if req.MinLength > 0 {
		// Length-driven: keep drawing until the bare pinyin
		// (separators excluded) reaches the minimum.
		total := 0
		for total < req.MinLength {
			e, err := drawEntry(pool)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
			total += len(e.Pinyin)
		}
		return entries, nil
	}

	for i := 0; i < req.Words; i++ {
		e, err := drawEntry(pool)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// drawEntry draws one word uniformly at random from the pool.
func drawEntry(pool wordlist.List) (wordlist.Entry, error) {
	i, err := randIndex(pool.Len())
	if err != nil {
		return wordlist.Entry{}, model.WrapCLIError(model.ExitGeneralError, "random source failed", err)
	}
	return pool[i], nil
}

// intersperseDigits inserts n single-digit tokens at uniformly random
// positions in the token list. Digits are standalone tokens rather
// than edits inside a word so the hint stays readable.
func intersperseDigits(tokens []token, n int) ([]token, error) {
	for i := 0; i < n; i++ {
		d, err := randIndex(10)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "random source failed", err)
		}
		pos, err := randIndex(len(tokens) + 1)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "random source failed", err)
		}
		digit := token{text: fmt.Sprintf("%d", d), hint: fmt.Sprintf("%d", d)}
		tokens = append(tokens[:pos], append([]token{digit}, tokens[pos:]...)...)
	}
	return tokens, nil
}

// joinTokens renders either the passphrase or the hint form.
func joinTokens(tokens []token, sep string, hint bool) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if hint {
			parts[i] = t.hint
		} else {
			parts[i] = t.text
		}
	}
	return strings.Join(parts, sep)
}

// capitalizeWord upper-cases the first letter of a pinyin word.
// Pinyin is ASCII, so a byte-level transform is sufficient.
func capitalizeWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
