package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/mmr-tortoise/ppgen/internal/model"
)

//go:embed chinese_words.txt
var bundled []byte

// Entry is one candidate word: the hanzi form shown in memory hints,
// the bare pinyin used in passphrases, and the number of hanzi
// characters (derived from the tone digits in the source line).
type Entry struct {
	// Hanzi is the Chinese word itself.
	Hanzi string `json:"hanzi"`

	// Pinyin is the romanization with tone digits and apostrophes
	// removed, e.g. "pengyou" for 朋友 (peng2'you3).
	Pinyin string `json:"pinyin"`

	// CharCount is the number of hanzi characters in the word.
	CharCount int `json:"charCount"`
}

// List is the immutable ordered candidate pool. It is loaded once at
// process start and passed explicitly to the generator; there is no
// package-level mutable state.
type List []Entry

// Len returns the pool size.
func (l List) Len() int {
	return len(l)
}

// FilterCharCount returns the sub-pool of words with exactly n hanzi
// characters. n <= 0 means no filtering and returns the list as-is.
func (l List) FilterCharCount(n int) List {
	if n <= 0 {
		return l
	}
	var out List
	for _, e := range l {
		if e.CharCount == n {
			out = append(out, e)
		}
	}
	return out
}

// CharCounts returns the distinct character counts present in the
// pool mapped to their sub-pool sizes.
func (l List) CharCounts() map[int]int {
	counts := make(map[int]int)
	for _, e := range l {
		counts[e.CharCount]++
	}
	return counts
}

// Load parses the bundled wordlist. A build that embeds an empty or
// corrupt data file fails here, at startup, with ExitWordlistError.
func Load() (List, error) {
	list, err := Parse(bytes.NewReader(bundled))
	if err != nil {
		return nil, model.WrapCLIError(model.ExitWordlistError, "bundled wordlist is corrupt", err)
	}
	return list, nil
}

// LoadFile parses an external wordlist file in the same tab-separated
// format as the bundled data.
func LoadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitWordlistError,
			fmt.Sprintf("cannot open wordlist %s", path), err)
	}
	defer func() { _ = f.Close() }()

	list, err := Parse(f)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitWordlistError,
			fmt.Sprintf("wordlist %s is corrupt", path), err)
	}
	return list, nil
}

// Parse reads tab-separated hanzi/pinyin lines. Blank lines and lines
// starting with '#' are skipped. Lines without a tab or without any
// tone digit are rejected: the tone digits are the only source of the
// character count, so a line without them is malformed.
func Parse(r io.Reader) (List, error) {
	var list List
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		hanzi, toned, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab separator", lineNo)
		}
		hanzi = strings.TrimSpace(hanzi)
		toned = strings.TrimSpace(toned)
		if hanzi == "" || toned == "" {
			return nil, fmt.Errorf("line %d: blank hanzi or pinyin field", lineNo)
		}

		pinyin, charCount := stripTones(toned)
		if charCount == 0 {
			return nil, fmt.Errorf("line %d: pinyin %q has no tone digits", lineNo, toned)
		}
		if pinyin == "" {
			return nil, fmt.Errorf("line %d: pinyin %q is empty after stripping tones", lineNo, toned)
		}

		list = append(list, Entry{Hanzi: hanzi, Pinyin: pinyin, CharCount: charCount})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("wordlist contains no entries")
	}
	return list, nil
}

// stripTones removes tone digits and syllable apostrophes from a toned
// pinyin string, returning the bare pinyin and the digit count (which
// equals the hanzi character count, one tone per syllable).
func stripTones(toned string) (string, int) {
	var b strings.Builder
	count := 0
	for _, r := range toned {
		switch {
		case unicode.IsDigit(r):
			count++
		case r == '\'':
			// syllable separator, dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), count
}
