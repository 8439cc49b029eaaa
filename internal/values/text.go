package values

import (
	"encoding"
	"fmt"
	"reflect"
)

// textUnmarshalerValue is a generic Value adapter for any type
// that implements encoding.TextUnmarshaler.
type textUnmarshalerValue struct {
	value encoding.TextUnmarshaler // a pointer to the user's type
}

func newTextUnmarshaler(val any) Value {
	return &textUnmarshalerValue{value: val.(encoding.TextUnmarshaler)}
}

func (v *textUnmarshalerValue) Set(s string) error {
	return v.value.UnmarshalText([]byte(s))
}

func (v *textUnmarshalerValue) String() string {
	// For symmetrical behavior, check for the Marshaler interface first.
	if marshaler, ok := v.value.(encoding.TextMarshaler); ok {
		text, err := marshaler.MarshalText()
		if err == nil {
			return string(text)
		}
	}
	// Fall back to the fmt.Stringer interface.
	if stringer, ok := v.value.(fmt.Stringer); ok {
		return stringer.String()
	}

	return ""
}

func (v *textUnmarshalerValue) Type() string {
	return reflect.TypeOf(v.value).Elem().Name()
}
