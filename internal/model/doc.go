// Package model defines the domain types for the ppgen CLI.
//
// The types here are transient: a request is built from command-line
// flags (optionally pre-filled from a config file), validated once,
// handed to the generator, and discarded. Nothing in this package is
// persisted across invocations.
package model
