// Package types provides useful, pre-built implementations of the
// cmdline.Value interface for common use cases.
package types

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Counter is an option type that increments its value each time it appears
// on the command line, so it can back repetition flags like -vvv. Setting
// it with an explicit value assigns instead.
type Counter int

// Set implements the cmdline.Value interface.
func (c *Counter) Set(val string) error {
	if val == "" || val == "true" {
		*c++

		return nil
	}

	parsed, err := strconv.ParseInt(val, 0, 0)
	if err != nil {
		return fmt.Errorf("invalid value for counter: %w", err)
	}

	if parsed == -1 {
		*c++
	} else {
		*c = Counter(parsed)
	}

	return nil
}

// Get returns inner value for Counter.
func (c *Counter) Get() any { return int(*c) }

// IsBoolFlag returns true, because Counter might be used without value.
func (c *Counter) IsBoolFlag() bool { return true }

// String implements the cmdline.Value interface.
func (c *Counter) String() string { return strconv.Itoa(int(*c)) }

// IsCumulative returns true, because Counter might be used multiple times.
func (c *Counter) IsCumulative() bool { return true }

// Type implements the cmdline.Value interface.
func (c *Counter) Type() string { return "count" }

// HexBytes is a byte slice that parses from a hexadecimal string, for
// options carrying raw binary data such as keys or digests.
type HexBytes []byte

// Set implements the cmdline.Value interface.
func (h *HexBytes) Set(val string) error {
	decoded, err := hex.DecodeString(val)
	if err != nil {
		return fmt.Errorf("invalid hex value: %w", err)
	}
	*h = decoded

	return nil
}

// Get returns inner value for HexBytes.
func (h *HexBytes) Get() any { return []byte(*h) }

// String implements the cmdline.Value interface.
func (h *HexBytes) String() string { return hex.EncodeToString(*h) }

// Type implements the cmdline.Value interface.
func (h *HexBytes) Type() string { return "hex" }
