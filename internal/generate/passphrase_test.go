package generate

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/ppgen/internal/model"
	"github.com/mmr-tortoise/ppgen/internal/wordlist"
)

// testPool is a small fixed candidate pool used across generator tests.
var testPool = wordlist.List{
	{Hanzi: "山", Pinyin: "shan", CharCount: 1},
	{Hanzi: "水", Pinyin: "shui", CharCount: 1},
	{Hanzi: "天气", Pinyin: "tianqi", CharCount: 2},
	{Hanzi: "朋友", Pinyin: "pengyou", CharCount: 2},
	{Hanzi: "世界", Pinyin: "shijie", CharCount: 2},
	{Hanzi: "图书馆", Pinyin: "tushuguan", CharCount: 3},
}

// poolPinyin returns the set of lowercase pinyin words in the pool,
// for membership checks.
func poolPinyin(pool wordlist.List) map[string]bool {
	set := make(map[string]bool)
	for _, e := range pool {
		set[e.Pinyin] = true
	}
	return set
}

// TestPassphrase_WordCount verifies that word-count mode produces
// exactly N words joined by the configured separator, and that every
// word is a member of the pool.
func TestPassphrase_WordCount(t *testing.T) {
	req := &model.PassphraseRequest{Words: 5, Separator: "-"}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	words := strings.Split(result.Passphrase, "-")
	require.Len(t, words, 5, "should contain exactly 5 words")

	members := poolPinyin(testPool)
	for _, w := range words {
		assert.True(t, members[w], "word %q should come from the pool", w)
	}
}

// TestPassphrase_SingleWord verifies the minimum valid word count of 1.
func TestPassphrase_SingleWord(t *testing.T) {
	req := &model.PassphraseRequest{Words: 1, Separator: "-"}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	assert.True(t, poolPinyin(testPool)[result.Passphrase],
		"single-word passphrase should be a bare pool word")
}

// TestPassphrase_CustomSeparator verifies that a space separator is
// honored.
func TestPassphrase_CustomSeparator(t *testing.T) {
	req := &model.PassphraseRequest{Words: 3, Separator: " "}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	assert.Len(t, strings.Split(result.Passphrase, " "), 3)
	assert.NotContains(t, result.Passphrase, "-")
}

// TestPassphrase_Capitalize verifies that with random capitalization
// every word is still a pool member when compared case-insensitively.
func TestPassphrase_Capitalize(t *testing.T) {
	req := &model.PassphraseRequest{Words: 8, Separator: "-", Capitalize: true}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	members := poolPinyin(testPool)
	for _, w := range strings.Split(result.Passphrase, "-") {
		assert.True(t, members[strings.ToLower(w)],
			"word %q should match a pool word case-insensitively", w)
	}
}

// TestPassphrase_Digits verifies that digit insertion yields at least
// the requested number of digit characters and preserves the word count.
func TestPassphrase_Digits(t *testing.T) {
	req := &model.PassphraseRequest{Words: 4, Separator: "-", Digits: 3}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	digitCount := 0
	for _, r := range result.Passphrase {
		if unicode.IsDigit(r) {
			digitCount++
		}
	}
	assert.GreaterOrEqual(t, digitCount, 3, "at least 3 digit characters expected")

	// Non-digit tokens are still the 4 drawn words.
	words := 0
	members := poolPinyin(testPool)
	for _, tok := range strings.Split(result.Passphrase, "-") {
		if members[tok] {
			words++
		}
	}
	assert.Equal(t, 4, words, "digit tokens must not replace words")
}

// TestPassphrase_MinLength verifies length-driven mode: the combined
// pinyin length (separators excluded) reaches the minimum.
func TestPassphrase_MinLength(t *testing.T) {
	req := &model.PassphraseRequest{MinLength: 20, Separator: "-"}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	bare := strings.ReplaceAll(result.Passphrase, "-", "")
	assert.GreaterOrEqual(t, len(bare), 20)
}

// TestPassphrase_CharCountFilter verifies that filtering restricts
// draws to words of the requested character count.
func TestPassphrase_CharCountFilter(t *testing.T) {
	req := &model.PassphraseRequest{Words: 6, Separator: "-", CharCount: 2}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	two := poolPinyin(testPool.FilterCharCount(2))
	for _, w := range strings.Split(result.Passphrase, "-") {
		assert.True(t, two[w], "word %q should be a two-character word", w)
	}
}

// TestPassphrase_EmptyFilteredPool verifies that a filter matching no
// words fails with a configuration error, not a panic or empty output.
func TestPassphrase_EmptyFilteredPool(t *testing.T) {
	req := &model.PassphraseRequest{Words: 4, Separator: "-", CharCount: 9}
	_, err := Passphrase(testPool, req)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "9 characters",
		"a bad filter should be reported as such, not as missing data")
}

// TestPassphrase_EmptyList verifies that an empty wordlist (no filter
// involved) is reported as missing data with the wordlist exit code.
func TestPassphrase_EmptyList(t *testing.T) {
	req := &model.PassphraseRequest{Words: 4, Separator: "-"}
	_, err := Passphrase(nil, req)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitWordlistError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "empty")
}

// TestPassphrase_HintMirrorsTokens verifies the hanzi hint has the
// same token structure as the passphrase: hanzi(pinyin) per word and
// bare digits for digit tokens.
func TestPassphrase_HintMirrorsTokens(t *testing.T) {
	req := &model.PassphraseRequest{Words: 3, Separator: "-", Digits: 1}
	result, err := Passphrase(testPool, req)
	require.NoError(t, err)

	pwTokens := strings.Split(result.Passphrase, "-")
	hintTokens := strings.Split(result.Hint, "-")
	require.Len(t, hintTokens, len(pwTokens))

	for i, pt := range pwTokens {
		if len(pt) == 1 && pt[0] >= '0' && pt[0] <= '9' {
			assert.Equal(t, pt, hintTokens[i], "digit tokens appear verbatim in the hint")
		} else {
			assert.Contains(t, hintTokens[i], "("+pt+")",
				"hint token should wrap the pinyin in hanzi(pinyin) form")
		}
	}
}

// TestPassphrase_OutputsDiffer verifies that repeated invocations with
// the same configuration produce different outputs. With 6^8 possible
// passphrases, ten identical draws in a row would indicate a broken
// random source.
func TestPassphrase_OutputsDiffer(t *testing.T) {
	req := &model.PassphraseRequest{Words: 8, Separator: "-"}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		result, err := Passphrase(testPool, req)
		require.NoError(t, err)
		seen[result.Passphrase] = true
	}
	assert.Greater(t, len(seen), 1, "outputs should vary across invocations")
}
