package govalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmdline "github.com/bibmaster/command-line-parser"
)

func TestNew(t *testing.T) {
	t.Parallel()

	validate := New(Rules{
		"compression": "oneof=0 1 2 3 4 5 6 7 8 9",
		"addr":        "ip",
	})

	tests := []struct {
		name  string
		value string
		opt   string

		expErr string
	}{
		{"value within rule", "5", "compression", ""},
		{"value outside rule", "11", "compression", "`11` is not a valid oneof for compression"},
		{"well-formed address", "127.0.0.1", "addr", ""},
		{"malformed address", "localhost", "addr", "`localhost` is not a valid ip for addr"},
		{"option without a rule", "anything", "unruled", ""},
		{"empty rule is a pass", "anything", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validate(tt.value, tt.opt)
			if tt.expErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.expErr)
		})
	}
}

func TestNewWith(t *testing.T) {
	t.Parallel()

	instance := validator.New()
	err := instance.RegisterValidation("evenlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	})
	require.NoError(t, err)

	validate := NewWith(instance, Rules{"key": "evenlen"})
	assert.NoError(t, validate("abcd", "key"))
	assert.EqualError(t, validate("abc", "key"), "`abc` is not a valid evenlen for key")
}

func TestValidationErrorUnwraps(t *testing.T) {
	t.Parallel()

	validate := New(Rules{"level": "numeric"})
	err := validate("high", "level")
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "numeric", verrs[0].Tag())
}

func TestParserIntegration(t *testing.T) {
	t.Parallel()

	newParser := func(level *int) *cmdline.Parser {
		return cmdline.New().
			Add(level, "+level,l", "compression level").
			SetValidator(New(Rules{"level": "oneof=0 1 2 3 4 5 6 7 8 9"}))
	}

	t.Run("valid value binds", func(t *testing.T) {
		t.Parallel()
		var level int
		p := newParser(&level)
		require.NoError(t, p.Parse([]string{"prog", "--level", "7"}))
		assert.Equal(t, 7, level)
		require.NoError(t, p.CheckRequired())
	})

	t.Run("rejected value reported as invalid", func(t *testing.T) {
		t.Parallel()
		var level int
		p := newParser(&level)
		err := p.Parse([]string{"prog", "--level", "11"})
		require.EqualError(t, err, "invalid option value: 11")
		assert.ErrorIs(t, err, cmdline.ErrInvalidValue)

		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "the validator's own error stays reachable")
	})

	t.Run("conversion runs before validation", func(t *testing.T) {
		t.Parallel()
		var level int
		p := newParser(&level)
		err := p.Parse([]string{"prog", "--level", "x"})
		require.EqualError(t, err, "invalid option value: x")
		assert.ErrorIs(t, err, cmdline.ErrInvalidValue)
	})
}
