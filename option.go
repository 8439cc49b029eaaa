package cmdline

import (
	"strings"

	"github.com/bibmaster/command-line-parser/internal/values"
)

// optionKind discriminates the three behaviors an option can have on the
// command line.
type optionKind uint8

const (
	// kindValue options consume exactly one argument.
	kindValue optionKind = iota

	// kindFlag options consume no argument at all.
	kindFlag

	// kindList options accumulate every argument bound to them.
	kindList
)

// option is a single registered option. Its name, flags and hint come from
// the "[+]name[,flags[,hint]]" spec string given at registration.
type option struct {
	kind     optionKind
	parsed   bool
	required bool
	value    values.Value
	name     string // long name, matched after "--"
	flags    string // short option characters, matched after "-"
	help     string
	hint     string // value placeholder shown in help output
	position int
}

// newOption builds an option from its spec string. A leading '+' marks the
// option required, the first comma separates the long name from the short
// characters, and everything after the second comma is the hint.
func newOption(kind optionKind, value values.Value, spec, help string, position int) *option {
	opt := &option{
		kind:     kind,
		value:    value,
		help:     help,
		position: position,
	}

	if strings.HasPrefix(spec, "+") {
		opt.required = true
		spec = spec[1:]
	}

	rest, hasFlags := "", false
	opt.name, rest, hasFlags = strings.Cut(spec, ",")
	if !hasFlags {
		return opt
	}
	opt.flags, opt.hint, _ = strings.Cut(rest, ",")

	return opt
}

// kindOf derives the command-line behavior of a storage value from its
// capabilities: boolean flags consume no argument, cumulative values keep
// accepting arguments, everything else takes exactly one.
func kindOf(value values.Value) optionKind {
	if flag, ok := value.(values.BoolFlag); ok && flag.IsBoolFlag() {
		return kindFlag
	}
	if list, ok := value.(values.Cumulative); ok && list.IsCumulative() {
		return kindList
	}

	return kindValue
}

// findByName resolves a long option name. A miss is an error only when
// unknown options are not tolerated.
func (p *Parser) findByName(name string) (*option, *Error) {
	for _, opt := range p.options {
		if opt.name == name {
			return opt, nil
		}
	}
	if !p.skipUnknown {
		return nil, newError(ErrUnknownOption, "--"+name)
	}

	return nil, nil
}

// findByFlag resolves a single short option character.
func (p *Parser) findByFlag(flag rune) (*option, *Error) {
	for _, opt := range p.options {
		if strings.ContainsRune(opt.flags, flag) {
			return opt, nil
		}
	}
	if !p.skipUnknown {
		return nil, newError(ErrUnknownOption, "-"+string(flag))
	}

	return nil, nil
}

// findPositional resolves a 1-based argument slot to the option claiming
// it, falling back to the last registered catch-all.
func (p *Parser) findPositional(position int) *option {
	var catchAll *option
	for _, opt := range p.options {
		if opt.position == position {
			return opt
		}
		if opt.position == Rest {
			catchAll = opt
		}
	}

	return catchAll
}

// hasPositional reports whether any option claims argument slots, the
// catch-all included. Bare arguments then bind to slots instead of feeding
// a pending list option.
func (p *Parser) hasPositional() bool {
	for _, opt := range p.options {
		if opt.position != 0 {
			return true
		}
	}

	return false
}
