package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randIndex returns a uniform random integer in [0, n) from the
// secrets-grade source. crypto/rand.Int performs rejection sampling
// internally, so the result is exactly uniform, not merely close.
func randIndex(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random index bound must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

// coinFlip returns a uniform random boolean.
func coinFlip() (bool, error) {
	i, err := randIndex(2)
	if err != nil {
		return false, err
	}
	return i == 1, nil
}

// randRune returns one uniformly drawn rune from the alphabet.
func randRune(alphabet []rune) (rune, error) {
	i, err := randIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}
