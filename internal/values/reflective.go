package values

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf((*time.Duration)(nil)).Elem()

// reflectiveValue converts tokens into primitive storage based on its Kind.
// Conversion is strict: the whole token must parse, and numeric tokens must
// fit the target's bit size.
type reflectiveValue struct {
	value reflect.Value
}

func newReflectiveValue(val reflect.Value) (Value, error) {
	switch val.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &reflectiveValue{value: val}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, val.Type())
	}
}

func (v *reflectiveValue) Set(s string) error {
	switch v.value.Kind() {
	case reflect.String:
		v.value.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.value.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Handle time.Duration as a special case of int64.
		if v.value.Type() == durationType {
			d, err := time.ParseDuration(s)
			if err != nil {
				return err
			}
			v.value.SetInt(int64(d))

			return nil
		}
		n, err := strconv.ParseInt(s, 10, v.value.Type().Bits())
		if err != nil {
			return err
		}
		v.value.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.value.Type().Bits())
		if err != nil {
			return err
		}
		v.value.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.value.Type().Bits())
		if err != nil {
			return err
		}
		v.value.SetFloat(n)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.value.Type())
	}

	return nil
}

func (v *reflectiveValue) String() string {
	return fmt.Sprintf("%v", v.value.Interface())
}

func (v *reflectiveValue) Type() string {
	return v.value.Type().String()
}
