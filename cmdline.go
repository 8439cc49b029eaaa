// Package cmdline implements a tiny command-line argument parser built
// around explicit option registration. Options are declared with a compact
// "[+]name[,flags[,hint]]" spec string covering the long name, the short
// option characters, the required marking and the value placeholder used in
// help output.
//
// The primary workflow is to register storage targets with Add, AddFlag or
// AddValue, call Parse on os.Args, and then CheckRequired once the
// application knows required options must be present (typically after
// handling a help flag). Help renders a usage summary with aligned option
// tables at any point.
//
// For useful, pre-built value types like Counter, see the subpackage at
// "github.com/bibmaster/command-line-parser/types".
package cmdline

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bibmaster/command-line-parser/internal/values"
)

// Rest is the position binding a positional option to every argument slot
// that no fixed position claims.
const Rest = -1

// === Parser ===

// Parser collects option registrations and processes command lines against
// them. Configuration and registration methods return the receiver so that
// declarations chain.
type Parser struct {
	program     string
	skipUnknown bool
	validate    ValidateFunc
	options     []*option
	err         error
}

// New creates an empty parser.
func New() *Parser {
	return &Parser{}
}

// === Configuration ===

// SetProgram sets the name shown in help output. Parse overrides it with
// the last path element of args[0].
func (p *Parser) SetProgram(name string) *Parser {
	p.program = name

	return p
}

// SkipUnknown controls whether an unknown option aborts parsing or is
// silently dropped together with the value that follows it.
func (p *Parser) SkipUnknown(skip bool) *Parser {
	p.skipUnknown = skip

	return p
}

// SetValidator installs fn to vet every bound option value.
func (p *Parser) SetValidator(fn ValidateFunc) *Parser {
	p.validate = fn

	return p
}

// === Registration ===

// AddFlag registers a boolean flag bound to storage. A flag never consumes
// an argument; parsing one stores true.
func (p *Parser) AddFlag(storage *bool, spec, help string) *Parser {
	if storage == nil {
		panic(fmt.Sprintf("cmdline: flag %q: nil storage", spec))
	}
	p.options = append(p.options, newOption(kindFlag, values.NewFlag(storage), spec, help, 0))

	return p
}

// Add registers an option bound to storage, which must be a non-nil
// pointer to a supported type: a string, bool, integer, float or
// time.Duration, an encoding.TextUnmarshaler implementation, a pointer to
// one of these for optional semantics, or a slice of them to accumulate a
// list. An unsupported storage panics, as registration arguments are under
// programmer control.
//
// The optional trailing position claims a fixed argument slot (1-based),
// or every remaining slot when it is Rest.
func (p *Parser) Add(storage any, spec, help string, position ...int) *Parser {
	value, err := values.New(storage)
	if err != nil {
		panic(fmt.Sprintf("cmdline: option %q: %v", spec, err))
	}
	p.options = append(p.options, newOption(kindOf(value), value, spec, help, optionPosition(position)))

	return p
}

// AddValue registers an option whose storage and conversion are both
// provided by a pflag-compatible value implementation. The option's
// behavior is derived from the value's capabilities: an IsBoolFlag value
// acts as a flag and an IsCumulative value accumulates a list.
func (p *Parser) AddValue(value pflag.Value, spec, help string, position ...int) *Parser {
	if value == nil {
		panic(fmt.Sprintf("cmdline: option %q: nil value", spec))
	}
	p.options = append(p.options, newOption(kindOf(value), value, spec, help, optionPosition(position)))

	return p
}

// optionPosition unpacks the optional trailing position argument.
func optionPosition(position []int) int {
	if len(position) == 0 {
		return 0
	}

	return position[0]
}

// === Results ===

// Err returns the error retained by the most recent failing Parse or
// CheckRequired call, or nil.
func (p *Parser) Err() error {
	return p.err
}

// === Core Interfaces ===

// Value is the interface for custom option storage types. It matches the
// pflag.Value contract, so implementations are interchangeable between the
// two libraries.
type Value = values.Value

// ValidateFunc vets one bound option value. It receives the raw token and
// the option's primary name; a non-nil return aborts parsing with an
// invalid-value error wrapping it.
type ValidateFunc func(value, name string) error
