// Package cmdregistry defines the command registry used by the CLI
// entrypoint. Commands are registered under multi-word names ("user create")
// and resolved from the positional tokens of an invocation by narrowing a
// lexicographically sorted command list one token at a time. This allows
// individual command implementations to live in separate packages while
// main.go stays focused on argument parsing.
package cmdregistry
