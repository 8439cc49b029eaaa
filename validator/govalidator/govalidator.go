// Package govalidator bridges go-playground/validator into per-option
// value validation for cmdline parsers.
package govalidator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	cmdline "github.com/bibmaster/command-line-parser"
)

// Rules maps an option's primary name to the validation tag applied to
// every value it binds, e.g. {"compression": "min=0,max=9"}. Options
// without a rule always pass.
type Rules map[string]string

// New builds a validation function applying rules with a default validator
// instance. Refer to the go-playground/validator docs for the available
// tag validations.
func New(rules Rules) cmdline.ValidateFunc {
	return NewWith(validator.New(), rules)
}

// NewWith builds a validation function applying rules through v, so that
// custom validations registered on it are usable in rule tags.
func NewWith(v *validator.Validate, rules Rules) cmdline.ValidateFunc {
	return func(value, name string) error {
		tag := rules[name]
		if tag == "" {
			return nil
		}
		if err := v.Var(value, tag); err != nil {
			return &invalidVarError{name: name, value: value, err: err}
		}

		return nil
	}
}

// invalidVarError adapts a validator error to name the offending option,
// since Var-based validation reports an anonymous field.
type invalidVarError struct {
	name  string
	value string
	err   error
}

func (e *invalidVarError) Error() string {
	var verrs validator.ValidationErrors
	if errors.As(e.err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("`%s` is not a valid %s for %s", e.value, verrs[0].Tag(), e.name)
	}

	// Or simply replace the empty field key with the option name.
	return strings.ReplaceAll(e.err.Error(), "''", fmt.Sprintf("'%s'", e.name))
}

func (e *invalidVarError) Unwrap() error { return e.err }
