// Package options declares the global option table and adapts the
// go-getoptions parser to it.
//
// The rest of the CLI only sees the two types defined here: Table (what may
// appear on the command line) and Invocation (what actually did). Handlers
// read typed values out of an Invocation; the token matcher consumes its
// positional words. Keeping the parser behind this boundary means the core
// never depends on the tokenizing library directly.
package options
