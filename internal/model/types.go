package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ExitCode defines the CLI exit codes. These codes allow scripts to
// programmatically distinguish bad invocations from missing data.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the request was invalid: non-positive
	// word count, bad separator, unsupported flag combination, or a
	// malformed defaults file.
	ExitConfigError ExitCode = 2

	// ExitWordlistError indicates the wordlist could not be loaded or
	// is unusable (missing, empty, or corrupt). This is fatal: the
	// generator has no fallback data source.
	ExitWordlistError ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// DefaultWordCount is the number of words drawn when neither --words
// nor --min-length is given.
const DefaultWordCount = 4

// DefaultSeparator joins pinyin words in passphrase output.
const DefaultSeparator = "-"

// PassphraseRequest holds the configuration for one passphrase
// generation. It is constructed from command-line input, consumed
// once, and discarded.
type PassphraseRequest struct {
	// Words is the number of words to draw, each independently and
	// uniformly at random with replacement. Ignored when MinLength
	// is set.
	Words int

	// MinLength, when positive, switches to length-driven mode:
	// words are drawn until their combined pinyin length reaches
	// this many characters.
	MinLength int

	// CharCount, when positive, restricts the candidate pool to
	// words of exactly this many hanzi characters.
	CharCount int

	// Separator joins the words in the output. A single printable
	// non-alphanumeric rune, or a single space.
	Separator string

	// Capitalize enables random capitalization of the first letter
	// of each word (a coin flip per word).
	Capitalize bool

	// Digits is the number of random digit tokens to intersperse at
	// random word boundaries.
	Digits int
}

// Validate checks the request for configuration errors. It returns a
// CLIError with ExitConfigError so the CLI layer can exit accordingly.
func (r *PassphraseRequest) Validate() error {
	if r.MinLength <= 0 && r.Words <= 0 {
		return NewCLIError(ExitConfigError,
			fmt.Sprintf("word count must be positive, got %d", r.Words))
	}
	if r.CharCount < 0 {
		return NewCLIError(ExitConfigError,
			fmt.Sprintf("character count must not be negative, got %d", r.CharCount))
	}
	if r.Digits < 0 {
		return NewCLIError(ExitConfigError,
			fmt.Sprintf("digit count must not be negative, got %d", r.Digits))
	}
	if err := ValidateSeparator(r.Separator); err != nil {
		return err
	}
	return nil
}

// ComplexRequest holds the configuration for one complex-password
// generation: pinyin words joined by random symbol characters with a
// two-character symbol tail.
type ComplexRequest struct {
	// MinLength is the minimum total length of the generated
	// password, including separators and the tail.
	MinLength int

	// Capitalize capitalizes the first letter of every word.
	Capitalize bool
}

// Validate checks the request for configuration errors.
func (r *ComplexRequest) Validate() error {
	if r.MinLength <= 0 {
		return NewCLIError(ExitConfigError,
			fmt.Sprintf("minimum length must be positive, got %d", r.MinLength))
	}
	return nil
}

// Result is the outcome of one generation: the secret itself, the
// hanzi memory hint that mirrors it token for token, and the entropy
// estimate in bits. It has no persisted identity.
type Result struct {
	// Passphrase is the generated secret.
	Passphrase string `json:"passphrase"`

	// Hint pairs each pinyin word with its hanzi in hanzi(pinyin)
	// form, so the user can reconstruct the secret from memory of
	// the Chinese words.
	Hint string `json:"hint"`

	// EntropyBits estimates the brute-force resistance of the
	// secret given the pool size and enabled transforms.
	EntropyBits float64 `json:"entropyBits"`
}

// ValidateSeparator checks that the separator is a single printable
// non-alphanumeric rune or a single space. Alphanumeric separators are
// rejected because they would be indistinguishable from word content.
func ValidateSeparator(sep string) error {
	if sep == "" {
		return NewCLIError(ExitConfigError, "separator must not be empty")
	}
	r, size := utf8.DecodeRuneInString(sep)
	if r == utf8.RuneError || size != len(sep) {
		return NewCLIError(ExitConfigError,
			fmt.Sprintf("separator must be a single character, got %q", sep))
	}
	if r == ' ' {
		return nil
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || !unicode.IsPrint(r) {
		return NewCLIError(ExitConfigError,
			fmt.Sprintf("separator %q must be a printable non-alphanumeric character", sep))
	}
	return nil
}
