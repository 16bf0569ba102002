// Package generate implements the passphrase composer.
//
// The composer is a single-pass, stateless transform: given a wordlist
// and a validated request, it draws words independently and uniformly
// at random (with replacement) from the pool, applies the enabled
// transforms, and returns the joined secret together with a hanzi
// memory hint and an entropy estimate in bits.
//
// All randomness comes from crypto/rand. A general-purpose PRNG would
// make outputs predictable across processes, which defeats the whole
// point of a secret generator.
package generate
