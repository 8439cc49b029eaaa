package cmdline

import (
	"strconv"
	"strings"
)

// maxLabelWidth caps the alignment column for option labels in help output.
// Longer labels print unpadded.
const maxLabelWidth = 30

// label renders the option's display name as shown in help output and in
// required-option errors, e.g. "-c [ --compression ] level".
func (o *option) label() string {
	if o.name == "" && o.flags == "" {
		if o.hint != "" {
			return o.hint
		}

		return "arg" + strconv.Itoa(o.position)
	}

	var b strings.Builder
	if o.flags != "" {
		b.WriteByte('-')
		b.WriteString(o.flags)
	}
	if o.name != "" {
		if o.flags != "" {
			b.WriteString(" [ ")
		}
		b.WriteString("--")
		b.WriteString(o.name)
		if o.flags != "" {
			b.WriteString(" ]")
		}
	}
	if o.kind != kindFlag {
		b.WriteByte(' ')
		if o.hint == "" {
			b.WriteString("arg")
		} else {
			b.WriteString(o.hint)
		}
	}

	return b.String()
}

// named reports whether the option belongs in the allowed-options table
// rather than the positional-arguments table.
func (o *option) named() bool {
	return o.name != "" || o.flags != ""
}

// primaryName is the identifier handed to validators: the long name when
// present, otherwise the short characters, otherwise the positional label.
func (o *option) primaryName() string {
	switch {
	case o.name != "":
		return o.name
	case o.flags != "":
		return o.flags
	default:
		return o.label()
	}
}

// Help renders the usage line followed by the named and positional option
// tables. Option labels are padded to the longest label of their table,
// capped at maxLabelWidth. The output only depends on the registered
// options and the program name.
func (p *Parser) Help() string {
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(p.program)
	b.WriteString(" [options]")

	hasOptions, hasPositionalArgs := false, false
	maxNameLen, maxArgLen := 0, 0
	for _, opt := range p.options {
		label := opt.label()
		if opt.named() {
			if len(label) > maxNameLen {
				maxNameLen = len(label)
			}
			hasOptions = true

			continue
		}
		if len(label) > maxArgLen {
			maxArgLen = len(label)
		}
		hasPositionalArgs = true
		b.WriteByte(' ')
		if !opt.required {
			b.WriteByte('[')
		}
		b.WriteString(label)
		if opt.kind == kindList {
			b.WriteString("...")
		}
		if !opt.required {
			b.WriteByte(']')
		}
	}
	b.WriteByte('\n')

	if maxNameLen > maxLabelWidth {
		maxNameLen = maxLabelWidth
	}
	if maxArgLen > maxLabelWidth {
		maxArgLen = maxLabelWidth
	}

	if hasOptions {
		b.WriteString("allowed options:\n")
		for _, opt := range p.options {
			if opt.named() {
				writeHelpLine(&b, opt, maxNameLen)
			}
		}
	}
	if hasPositionalArgs {
		b.WriteString("positional arguments:\n")
		for _, opt := range p.options {
			if !opt.named() {
				writeHelpLine(&b, opt, maxArgLen)
			}
		}
	}

	return b.String()
}

// writeHelpLine emits one table row. Padding is appended even when the help
// text is empty, so rows stay column-aligned.
func writeHelpLine(b *strings.Builder, opt *option, width int) {
	label := opt.label()
	b.WriteString("  ")
	b.WriteString(label)
	if len(label) < width {
		b.WriteString(strings.Repeat(" ", width-len(label)))
	}
	if opt.help != "" {
		b.WriteString(" : ")
		b.WriteString(opt.help)
	}
	b.WriteByte('\n')
}
