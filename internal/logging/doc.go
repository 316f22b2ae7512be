// Package logging provides a unified logging interface for the counting tools.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while keeping zerolog out of their signatures.
package logging
