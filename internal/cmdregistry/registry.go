package cmdregistry

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"useradm/internal/options"
)

// Context carries the parsed invocation and output sink that command
// handlers need.
type Context struct {
	Invocation *options.Invocation
	Out        io.Writer
}

// Handler validates the supplied option set and performs the command. A nil
// return means success; validation failures are reported as
// *MissingOptionError or *ExtraOptionError. Handlers write nothing before
// validation is complete.
type Handler func(*Context) error

// MissingOptionError reports a required option that was not supplied.
type MissingOptionError struct {
	Command string
	Option  string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("%s: missing required option --%s", e.Command, e.Option)
}

// ExtraOptionError reports a supplied option the command does not accept.
type ExtraOptionError struct {
	Command string
	Option  string
}

func (e *ExtraOptionError) Error() string {
	return fmt.Sprintf("%s: unexpected option --%s", e.Command, e.Option)
}

// Command is one registered subcommand: the token sequence that selects it,
// a one-line description, and its handler. Immutable after registration.
type Command struct {
	text    []string
	help    string
	handler Handler
}

// Text returns the command's token sequence.
func (c *Command) Text() []string {
	return c.text
}

// MergedText returns the space-joined token sequence.
func (c *Command) MergedText() string {
	return strings.Join(c.text, " ")
}

// Help returns the one-line description.
func (c *Command) Help() string {
	return c.help
}

// Invoke runs the command's handler.
func (c *Command) Invoke(ctx *Context) error {
	return c.handler(ctx)
}

// Registry owns the set of registered commands and resolves positional
// tokens to a unique command. Registration happens once, single-threaded, at
// startup; lookups only after that.
type Registry struct {
	commands []*Command
	sorted   bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a command under the given token sequence. It panics on an
// empty sequence or a duplicate, since either is a registration-time
// programming error.
func (r *Registry) Register(text []string, help string, h Handler) {
	if len(text) == 0 {
		panic("command text is empty")
	}
	for _, c := range r.commands {
		if slices.Equal(c.text, text) {
			panic(fmt.Sprintf("command %s already registered", strings.Join(text, " ")))
		}
	}
	r.commands = append(r.commands, &Command{
		text:    slices.Clone(text),
		help:    help,
		handler: h,
	})
	r.sorted = false
}

func (r *Registry) sortCommands() {
	if r.sorted {
		return
	}
	sort.Slice(r.commands, func(i, j int) bool {
		return slices.Compare(r.commands[i].text, r.commands[j].text) < 0
	})
	r.sorted = true
}

// tokenAt returns the command's token at position p. ok is false when the
// command is shorter; an exhausted command sorts before any literal token,
// including an empty one.
func tokenAt(c *Command, p int) (string, bool) {
	if p >= len(c.text) {
		return "", false
	}
	return c.text[p], true
}

// Lookup resolves the ordered positional tokens to the unique command whose
// full token sequence they begin with. Matching is greedy: the range of
// candidates is narrowed token by token until the tokens run out or the next
// token eliminates every candidate, and the longest fully supplied command
// text wins. Tokens beyond the matched text are the command's positional
// arguments and do not disturb the match. Comparison is exact and
// case-sensitive; no abbreviations.
func (r *Registry) Lookup(tokens []string) (*Command, bool) {
	r.sortCommands()

	lo, hi := 0, len(r.commands)
	matched := 0
	for _, tok := range tokens {
		// Two binary searches restrict the range to commands whose token
		// at this depth equals tok. Commands already exhausted sort first
		// and fall out of the range.
		nlo := lo + sort.Search(hi-lo, func(i int) bool {
			s, ok := tokenAt(r.commands[lo+i], matched)
			return ok && s >= tok
		})
		nhi := lo + sort.Search(hi-lo, func(i int) bool {
			s, ok := tokenAt(r.commands[lo+i], matched)
			return ok && s > tok
		})
		if nlo == nhi {
			break
		}
		lo, hi = nlo, nhi
		matched++
	}
	if lo == hi {
		return nil, false
	}
	// Within the surviving range the shortest command sorts first; it is
	// the match iff its text was consumed in full.
	if c := r.commands[lo]; len(c.text) == matched {
		return c, true
	}
	return nil, false
}

const helpGap = 4

// RenderHelp produces the two-column command table in sorted order: merged
// command text on the left, padded to the widest command plus a fixed gap,
// help text on the right.
func (r *Registry) RenderHelp() string {
	r.sortCommands()

	width := 0
	for _, c := range r.commands {
		if n := len(c.MergedText()); n > width {
			width = n
		}
	}
	var b strings.Builder
	b.WriteString("commands:\n")
	for _, c := range r.commands {
		name := c.MergedText()
		b.WriteString(name)
		b.WriteString(strings.Repeat(" ", width-len(name)+helpGap))
		b.WriteString(c.help)
		b.WriteString("\n")
	}
	return b.String()
}
