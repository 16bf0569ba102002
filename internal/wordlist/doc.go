// Package wordlist loads and indexes the hanzi→pinyin candidate pool.
//
// The bundled data file is tab-separated, one word per line:
//
//	汉字<TAB>pinyin-with-tone-digits
//
// Tone digits (one per syllable) give the character count; they are
// counted and then stripped, along with the apostrophes that separate
// syllables, to produce the bare pinyin used in passphrases. The file
// is compiled into the binary with go:embed, so the tool has no
// runtime data dependency unless the user supplies --wordlist.
package wordlist
