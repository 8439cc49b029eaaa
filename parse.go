package cmdline

import "strings"

// Parse processes a command line. args[0] is the program path; its last
// path element becomes the program name shown in help output. Parsing stops
// at the first failure, whose error is returned and kept readable through
// Err. Conversions already applied are not rolled back.
func (p *Parser) Parse(args []string) error {
	if len(args) > 0 {
		p.program = programName(args[0])
	}

	hasPosArg := p.hasPositional()

	var (
		pending   *option // value option waiting for its argument
		skipValue bool    // discard the next bare argument (tolerated unknown)
		position  int     // slot of the last bare argument bound positionally
	)

	for argNum := 1; argNum < len(args); argNum++ {
		raw := args[argNum]
		arg := raw
		if arg == "" {
			continue
		}

		if arg[0] != '-' {
			if skipValue {
				skipValue = false
				continue
			}
			if pending != nil {
				pending.parsed = true
				if err := p.assign(pending, arg); err != nil {
					return p.fail(err)
				}
				// A list keeps consuming arguments unless slots may
				// still claim them.
				if pending.kind != kindList || hasPosArg {
					pending = nil
				}
				continue
			}
			position++
			opt := p.findPositional(position)
			if opt == nil {
				return p.fail(newError(ErrPositionalNotAllowed, raw))
			}
			opt.parsed = true
			if err := p.assign(opt, arg); err != nil {
				return p.fail(err)
			}
			continue
		}

		// An option marker always resets carried state, so a bare "-" or
		// "--" drops a pending value option without consuming anything.
		pending = nil
		skipValue = false

		arg = arg[1:]
		isName := strings.HasPrefix(arg, "-")
		if isName {
			arg = arg[1:]
		}
		if arg == "" {
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if hasValue && name == "" {
			return p.fail(newError(ErrMissingOptionName, raw))
		}

		var opt *option
		var lookupErr *Error
		if isName {
			opt, lookupErr = p.findByName(name)
		} else if short := []rune(name); len(short) == 1 {
			opt, lookupErr = p.findByFlag(short[0])
		} else {
			if hasValue {
				return p.fail(newError(ErrFlagValueMix, raw))
			}
			if err := p.parseCluster(name); err != nil {
				return p.fail(err)
			}
			continue
		}

		if lookupErr != nil {
			return p.fail(lookupErr)
		}
		if opt == nil {
			// Tolerated unknown. Its value may arrive as the next
			// argument, so arm the discard even when one was inlined.
			skipValue = true
			continue
		}

		if opt.kind == kindFlag {
			if hasValue {
				return p.fail(newError(ErrValueUnexpected, raw))
			}
			opt.parsed = true
			_ = opt.value.Set("")
			continue
		}

		if !hasValue {
			pending = opt
			continue
		}

		opt.parsed = true
		if err := p.assign(opt, value); err != nil {
			return p.fail(err)
		}
		if opt.kind == kindList && !hasPosArg {
			pending = opt
		}
	}

	// A pending list that already consumed something is complete; a value
	// option still waiting for its argument is not.
	if pending != nil && !pending.parsed {
		return p.fail(newError(ErrValueRequired, args[len(args)-1]))
	}

	return nil
}

// parseCluster handles a run of short flag characters in a single token,
// such as "-xvf". Options taking a value cannot appear here.
func (p *Parser) parseCluster(name string) *Error {
	for _, flag := range name {
		opt, err := p.findByFlag(flag)
		if err != nil {
			return err
		}
		if opt == nil {
			continue
		}
		if opt.kind != kindFlag {
			return newError(ErrValueRequired, string(flag))
		}
		opt.parsed = true
		_ = opt.value.Set("")
	}

	return nil
}

// assign converts one token into the option's storage and runs the
// configured validator on the raw token.
func (p *Parser) assign(opt *option, token string) *Error {
	if err := opt.value.Set(token); err != nil {
		return wrapError(ErrInvalidValue, token, err)
	}
	if p.validate != nil {
		if err := p.validate(token, opt.primaryName()); err != nil {
			return wrapError(ErrInvalidValue, token, err)
		}
	}

	return nil
}

// fail retains the error for Err before returning it.
func (p *Parser) fail(err *Error) error {
	p.err = err

	return err
}

// CheckRequired reports the first required option, in registration order,
// that no argument bound during Parse.
func (p *Parser) CheckRequired() error {
	for _, opt := range p.options {
		if !opt.required || opt.parsed {
			continue
		}

		return p.fail(newError(ErrRequiredMissing, opt.label()))
	}

	return nil
}

// programName strips everything through the last path separator, Windows
// separators included.
func programName(path string) string {
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
