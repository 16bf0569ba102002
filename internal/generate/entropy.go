package generate

import "math"

// digitBits is the entropy contributed by one uniformly drawn decimal
// digit: log2(10).
var digitBits = math.Log2(10)

// symbolBits is the entropy contributed by one character drawn
// uniformly from the complex-mode symbol alphabet: log2(15).
var symbolBits = math.Log2(float64(len(symbolAlphabet)))

// WordBits returns the entropy of one uniform draw from a pool of the
// given size: log2(poolSize). A pool of zero or one word contributes
// nothing.
func WordBits(poolSize int) float64 {
	if poolSize <= 1 {
		return 0
	}
	return math.Log2(float64(poolSize))
}

// PassphraseBits estimates the entropy of a passphrase of `words`
// independent draws from a pool of `poolSize` candidates.
//
// Random per-word capitalization doubles the space per word, adding
// one bit each. Each interspersed digit adds log2(10) bits; the bits
// for choosing its boundary slot are deliberately not counted, which
// keeps the estimate conservative.
func PassphraseBits(poolSize, words int, capitalize bool, digits int) float64 {
	bits := float64(words) * WordBits(poolSize)
	if capitalize {
		bits += float64(words)
	}
	if digits > 0 {
		bits += float64(digits) * digitBits
	}
	return bits
}

// ComplexBits estimates the entropy of a complex-mode password:
// `words` pool draws plus `symbols` characters drawn uniformly from
// the 15-character symbol alphabet (separators and the tail).
// Capitalization in complex mode is applied to every word rather than
// flipped per word, so it adds no entropy.
func ComplexBits(poolSize, words, symbols int) float64 {
	return float64(words)*WordBits(poolSize) + float64(symbols)*symbolBits
}
