// Package prompt provides the interactive confirmation used before
// branch deletion. On a TTY it runs a Bubbletea model; with piped stdin
// it falls back to a plain line read so the tool stays scriptable.
package prompt
