// Package values builds the conversion layer between raw command-line
// tokens and the storage targets that options bind to.
package values

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
)

// Value is the interface to the dynamic value stored by an option. It is
// method-for-method compatible with the pflag.Value contract, so any pflag
// value implementation can serve as option storage.
type Value interface {
	String() string
	Set(string) error
	Type() string
}

// BoolFlag is implemented by values that may be set without an argument,
// such as booleans and counters.
type BoolFlag interface {
	Value
	IsBoolFlag() bool
}

// Cumulative is implemented by values that accumulate across repeated
// appearances instead of overwriting on each one.
type Cumulative interface {
	Value
	IsCumulative() bool
}

// ErrUnsupportedType indicates a storage target whose type no conversion
// tier can handle.
var ErrUnsupportedType = errors.New("unsupported storage type")

// New creates a value instance bound to target, which must be a non-nil
// pointer. It uses a tiered strategy to find the best way to handle the
// type: a direct Value implementation is used as is, types implementing
// encoding.TextUnmarshaler are adapted, a pointer target gains optional
// semantics (allocated on the first Set), a slice target accumulates one
// converted element per Set, and the remaining scalar kinds go through a
// strict reflective conversion.
func New(target any) (Value, error) {
	ptr := reflect.ValueOf(target)
	if !ptr.IsValid() || ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return nil, fmt.Errorf("%w: storage must be a non-nil pointer, got %T",
			ErrUnsupportedType, target)
	}

	return newValue(ptr.Elem())
}

// newValue dispatches an addressable storage value to its conversion tier.
// It is reused for slice elements and optional pointees, so every tier
// applies at any nesting depth.
func newValue(val reflect.Value) (Value, error) {
	// 1. Direct Value implementation:
	if val.CanAddr() && val.Addr().CanInterface() {
		addr := val.Addr().Interface()
		if v, ok := addr.(Value); ok {
			return v, nil
		}

		// 2. encoding.TextUnmarshaler:
		if _, ok := addr.(encoding.TextUnmarshaler); ok {
			return newTextUnmarshaler(addr), nil
		}
	}

	switch val.Kind() {
	// 3. Pointers mean optional scalars.
	case reflect.Ptr:
		return newOptionalValue(val)

	// 4. Slices accumulate converted elements.
	case reflect.Slice:
		return newSliceValue(val)

	// 5. Reflective parser fallback:
	default:
		return newReflectiveValue(val)
	}
}

// flagValue is the storage behind boolean flags. Setting it ignores the
// token entirely and records that the flag appeared.
type flagValue struct {
	value *bool
}

// NewFlag creates the storage value for a boolean flag bound to p.
func NewFlag(p *bool) Value {
	return &flagValue{value: p}
}

func (v *flagValue) Set(string) error {
	*v.value = true

	return nil
}

func (v *flagValue) String() string {
	return fmt.Sprintf("%v", *v.value)
}

func (v *flagValue) Type() string {
	return "bool"
}

// IsBoolFlag marks the flag as settable without an argument.
func (v *flagValue) IsBoolFlag() bool { return true }

// optionalValue wraps a pointer-kind storage value. The pointee is
// allocated on the first Set and left allocated even when the delegated
// conversion fails, so a bound-but-invalid token still marks presence.
type optionalValue struct {
	value reflect.Value
}

func newOptionalValue(val reflect.Value) (Value, error) {
	// Probe the pointee type now so that an unsupported target fails at
	// registration rather than on first use.
	scratch := reflect.New(val.Type().Elem()).Elem()
	if _, err := newValue(scratch); err != nil {
		return nil, err
	}

	return &optionalValue{value: val}, nil
}

func (v *optionalValue) Set(s string) error {
	if v.value.IsNil() {
		v.value.Set(reflect.New(v.value.Type().Elem()))
	}

	elem, err := newValue(v.value.Elem())
	if err != nil {
		return err
	}

	return elem.Set(s)
}

func (v *optionalValue) String() string {
	if v.value.IsNil() {
		return ""
	}

	return fmt.Sprintf("%v", v.value.Elem().Interface())
}

func (v *optionalValue) Type() string {
	return v.value.Type().Elem().String()
}

// sliceValue wraps a slice-kind storage value. Each Set appends a zero
// element and converts the token into it in place, so earlier elements
// survive a failed conversion.
type sliceValue struct {
	value reflect.Value
}

func newSliceValue(val reflect.Value) (Value, error) {
	scratch := reflect.New(val.Type().Elem()).Elem()
	if _, err := newValue(scratch); err != nil {
		return nil, fmt.Errorf("%w: slice element %s", ErrUnsupportedType, val.Type().Elem())
	}

	return &sliceValue{value: val}, nil
}

func (v *sliceValue) Set(s string) error {
	idx := v.value.Len()
	v.value.Set(reflect.Append(v.value, reflect.Zero(v.value.Type().Elem())))

	elem, err := newValue(v.value.Index(idx))
	if err != nil {
		return err
	}

	return elem.Set(s)
}

func (v *sliceValue) String() string {
	return fmt.Sprintf("%v", v.value.Interface())
}

func (v *sliceValue) Type() string {
	return "[]" + v.value.Type().Elem().String()
}

// IsCumulative marks the slice as accumulating across repeats.
func (v *sliceValue) IsCumulative() bool { return true }
