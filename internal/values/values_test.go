package values

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibmaster/command-line-parser/types"
)

func TestNewFlag(t *testing.T) {
	t.Parallel()

	var set bool
	value := NewFlag(&set)

	require.Equal(t, "false", value.String())
	require.Equal(t, "bool", value.Type())

	flag, ok := value.(BoolFlag)
	require.True(t, ok)
	require.True(t, flag.IsBoolFlag())

	require.NoError(t, value.Set("ignored"))
	require.True(t, set)
	require.Equal(t, "true", value.String())
}

func TestNew_RejectsBadTargets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target any
	}{
		{"nil target", nil},
		{"non-pointer target", 42},
		{"nil pointer", (*int)(nil)},
		{"unsupported struct", &struct{ A int }{}},
		{"unsupported map", &map[string]int{}},
		{"unsupported chan", new(chan int)},
		{"unsupported optional pointee", new(*chan int)},
		{"unsupported slice element", &[]chan int{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedType)
		})
	}
}

// customValue implements Value directly and must be used as-is by New.
type customValue struct {
	tokens []string
}

func (v *customValue) Set(s string) error { v.tokens = append(v.tokens, s); return nil }
func (v *customValue) String() string     { return strings.Join(v.tokens, ",") }
func (v *customValue) Type() string       { return "custom" }

func TestNew_DirectValueImplementation(t *testing.T) {
	t.Parallel()

	var custom customValue
	value, err := New(&custom)
	require.NoError(t, err)
	require.Same(t, &custom, value, "a Value target is used directly")

	require.NoError(t, value.Set("a"))
	require.NoError(t, value.Set("b"))
	assert.Equal(t, []string{"a", "b"}, custom.tokens)
}

func TestNew_DirectValueKeepsCapabilities(t *testing.T) {
	t.Parallel()

	var counter types.Counter
	value, err := New(&counter)
	require.NoError(t, err)

	flag, ok := value.(BoolFlag)
	require.True(t, ok)
	assert.True(t, flag.IsBoolFlag())

	list, ok := value.(Cumulative)
	require.True(t, ok)
	assert.True(t, list.IsCumulative())
}

func TestNew_TextUnmarshaler(t *testing.T) {
	t.Parallel()

	// net.IP is also a byte slice; the unmarshaler tier must win over the
	// slice tier.
	var addr net.IP
	value, err := New(&addr)
	require.NoError(t, err)
	require.Equal(t, "IP", value.Type())

	require.NoError(t, value.Set("192.168.0.1"))
	assert.Equal(t, net.ParseIP("192.168.0.1"), addr)
	assert.Equal(t, "192.168.0.1", value.String())

	require.Error(t, value.Set("not-an-address"))
}

func TestNew_OptionalPointer(t *testing.T) {
	t.Parallel()

	t.Run("allocates on first set", func(t *testing.T) {
		t.Parallel()
		var level *int
		value, err := New(&level)
		require.NoError(t, err)
		require.Equal(t, "int", value.Type())
		require.Empty(t, value.String())
		require.Nil(t, level)

		require.NoError(t, value.Set("3"))
		require.NotNil(t, level)
		assert.Equal(t, 3, *level)
		assert.Equal(t, "3", value.String())

		require.NoError(t, value.Set("5"))
		assert.Equal(t, 5, *level)
	})

	t.Run("failed conversion keeps the allocation", func(t *testing.T) {
		t.Parallel()
		var level *int
		value, err := New(&level)
		require.NoError(t, err)

		require.Error(t, value.Set("x"))
		require.NotNil(t, level)
		assert.Zero(t, *level)
	})
}

func TestNew_Slice(t *testing.T) {
	t.Parallel()

	t.Run("accumulates converted elements", func(t *testing.T) {
		t.Parallel()
		var nums []int
		value, err := New(&nums)
		require.NoError(t, err)
		require.Equal(t, "[]int", value.Type())

		list, ok := value.(Cumulative)
		require.True(t, ok)
		require.True(t, list.IsCumulative())

		require.NoError(t, value.Set("1"))
		require.NoError(t, value.Set("2"))
		assert.Equal(t, []int{1, 2}, nums)
	})

	t.Run("failed element stays appended at zero", func(t *testing.T) {
		t.Parallel()
		var nums []int
		value, err := New(&nums)
		require.NoError(t, err)

		require.NoError(t, value.Set("1"))
		require.Error(t, value.Set("x"))
		assert.Equal(t, []int{1, 0}, nums)
	})

	t.Run("elements convert through the tiers", func(t *testing.T) {
		t.Parallel()
		var addrs []net.IP
		value, err := New(&addrs)
		require.NoError(t, err)

		require.NoError(t, value.Set("127.0.0.1"))
		require.NoError(t, value.Set("10.0.0.1"))
		assert.Equal(t, []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("10.0.0.1")}, addrs)
	})
}

func TestReflective_Strings(t *testing.T) {
	t.Parallel()

	var s string
	value, err := New(&s)
	require.NoError(t, err)
	require.Equal(t, "string", value.Type())

	require.NoError(t, value.Set("anything at all"))
	assert.Equal(t, "anything at all", s)
	assert.Equal(t, "anything at all", value.String())
}

func TestReflective_Bools(t *testing.T) {
	t.Parallel()

	var b bool
	value, err := New(&b)
	require.NoError(t, err)

	require.NoError(t, value.Set("true"))
	require.True(t, b)
	require.NoError(t, value.Set("0"))
	require.False(t, b)

	require.Error(t, value.Set("yes"))
}

func TestReflective_Ints(t *testing.T) {
	t.Parallel()

	t.Run("whole token only", func(t *testing.T) {
		t.Parallel()
		var num int
		value, err := New(&num)
		require.NoError(t, err)

		require.NoError(t, value.Set("12"))
		assert.Equal(t, 12, num)
		require.Error(t, value.Set("12x"))
		require.Error(t, value.Set(""))
		assert.Equal(t, 12, num, "failed conversions leave the target alone")
	})

	t.Run("signed accepts negatives", func(t *testing.T) {
		t.Parallel()
		var num int64
		value, err := New(&num)
		require.NoError(t, err)

		require.NoError(t, value.Set("-42"))
		assert.EqualValues(t, -42, num)
	})

	t.Run("bit size bounds", func(t *testing.T) {
		t.Parallel()
		var num int8
		value, err := New(&num)
		require.NoError(t, err)

		require.NoError(t, value.Set("127"))
		assert.EqualValues(t, 127, num)
		require.Error(t, value.Set("128"))
	})

	t.Run("unsigned rejects negatives", func(t *testing.T) {
		t.Parallel()
		var num uint16
		value, err := New(&num)
		require.NoError(t, err)

		require.NoError(t, value.Set("65535"))
		assert.EqualValues(t, 65535, num)
		require.Error(t, value.Set("-1"))
		require.Error(t, value.Set("65536"))
	})
}

func TestReflective_Floats(t *testing.T) {
	t.Parallel()

	var ratio float64
	value, err := New(&ratio)
	require.NoError(t, err)

	require.NoError(t, value.Set("0.5"))
	assert.Equal(t, 0.5, ratio)
	require.NoError(t, value.Set("1e3"))
	assert.Equal(t, 1000.0, ratio)
	require.Error(t, value.Set("0.5.1"))
}

func TestReflective_Durations(t *testing.T) {
	t.Parallel()

	var wait time.Duration
	value, err := New(&wait)
	require.NoError(t, err)
	require.Equal(t, "time.Duration", value.Type())

	require.NoError(t, value.Set("1h30m"))
	assert.Equal(t, 90*time.Minute, wait)

	require.Error(t, value.Set("90"), "bare numbers have no unit")
}
