package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DavidGamba/go-getoptions"
)

// Kind is the declared value type of an option.
type Kind int

const (
	// Presence options carry no value; supplying the flag is the signal.
	Presence Kind = iota
	Int
	String
)

// Entry is one recognized option: its long name, value kind, and help line.
type Entry struct {
	Name string
	Kind Kind
	Help string
}

// Table is the fixed set of options the program recognizes. Built once at
// startup, immutable afterwards.
type Table struct {
	entries []Entry
	index   map[string]Entry
}

// NewTable builds a table from the given entries. It panics on a duplicate
// or empty option name; the table is assembled from literals in main, so any
// failure here is a programming error.
func NewTable(entries ...Entry) *Table {
	t := &Table{index: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			panic("option name is empty")
		}
		if _, exists := t.index[e.Name]; exists {
			panic(fmt.Sprintf("option %s already declared", e.Name))
		}
		t.entries = append(t.entries, e)
		t.index[e.Name] = e
	}
	return t
}

// Entries returns the declared options in declaration order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// value holds one supplied option. Only the field matching kind is set.
type value struct {
	kind Kind
	i    int
	s    string
}

// Invocation is one parsed command line: the options that were actually
// supplied, each at most once, plus the non-option words in the order they
// appeared. Reading an option that was not supplied yields ok=false.
type Invocation struct {
	values      map[string]value
	Positionals []string
}

// Parse runs the supplied arguments through go-getoptions against this
// table. Unknown options, malformed syntax, and value type mismatches all
// surface as a non-nil error; the caller treats any of them as a failed
// invocation.
func (t *Table) Parse(args []string) (*Invocation, error) {
	opt := getoptions.New()
	ints := make(map[string]*int)
	strs := make(map[string]*string)
	for _, e := range t.entries {
		switch e.Kind {
		case Int:
			ints[e.Name] = opt.Int(e.Name, 0, opt.Description(e.Help))
		case String:
			strs[e.Name] = opt.String(e.Name, "", opt.Description(e.Help))
		default:
			opt.Bool(e.Name, false, opt.Description(e.Help))
		}
	}
	rest, err := opt.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	inv := &Invocation{
		values:      make(map[string]value),
		Positionals: rest,
	}
	for _, e := range t.entries {
		if !opt.Called(e.Name) {
			continue
		}
		v := value{kind: e.Kind}
		switch e.Kind {
		case Int:
			v.i = *ints[e.Name]
		case String:
			v.s = *strs[e.Name]
		}
		inv.values[e.Name] = v
	}
	return inv, nil
}

// Present reports whether the option was supplied.
func (inv *Invocation) Present(name string) bool {
	_, ok := inv.values[name]
	return ok
}

// Int returns the value of a supplied int option.
func (inv *Invocation) Int(name string) (int, bool) {
	v, ok := inv.values[name]
	if !ok || v.kind != Int {
		return 0, false
	}
	return v.i, true
}

// String returns the value of a supplied string option.
func (inv *Invocation) String(name string) (string, bool) {
	v, ok := inv.values[name]
	if !ok || v.kind != String {
		return "", false
	}
	return v.s, true
}

// Supplied returns the names of all supplied options, sorted.
func (inv *Invocation) Supplied() []string {
	names := make([]string, 0, len(inv.values))
	for name := range inv.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extraneous returns the first supplied option (in sorted order) that is not
// in the allowed set. The ok result is true when such an option exists.
func (inv *Invocation) Extraneous(allowed ...string) (string, bool) {
	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}
	for _, name := range inv.Supplied() {
		if _, ok := set[name]; !ok {
			return name, true
		}
	}
	return "", false
}

const helpGap = 4

// RenderHelp produces the two-column option table: flag syntax on the left,
// padded to the widest flag plus a fixed gap, help text on the right. Options
// appear in declaration order.
func (t *Table) RenderHelp() string {
	left := make([]string, len(t.entries))
	width := 0
	for i, e := range t.entries {
		left[i] = "--" + e.Name
		if e.Kind != Presence {
			left[i] += " arg"
		}
		if len(left[i]) > width {
			width = len(left[i])
		}
	}
	var b strings.Builder
	b.WriteString("options:\n")
	for i, e := range t.entries {
		b.WriteString(left[i])
		b.WriteString(strings.Repeat(" ", width-len(left[i])+helpGap))
		b.WriteString(e.Help)
		b.WriteString("\n")
	}
	return b.String()
}
