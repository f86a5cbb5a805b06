package errdefs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "not found", err: &NotFoundError{Name: "frob"}, want: ExitNotFound},
		{name: "argument", err: &ArgumentError{Msg: "too many positional arguments"}, want: ExitInvalid},
		{name: "coercion", err: &CoercionError{Token: "x", Want: "int"}, want: ExitInvalid},
		{name: "call", err: &CallError{Command: "linalg.inv", Err: errors.New("singular")}, want: ExitFailed},
		{name: "adapter", err: &AdapterError{Path: "/tmp/stage.lua", Msg: "no such file"}, want: ExitFailed},
		{name: "no args", err: &NoArgsError{}, want: ExitNoArgs},
		{name: "plain error", err: errors.New("boom"), want: ExitFailed},
		{name: "wrapped taxonomy error", err: fmt.Errorf("outer: %w", &NotFoundError{Name: "x"}), want: ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestNotFoundErrorSuggestion(t *testing.T) {
	err := &NotFoundError{Name: "transpse", Suggestion: "transpose"}
	assert.Contains(t, err.Error(), "did you mean 'transpose'?")

	bare := &NotFoundError{Name: "frob"}
	assert.Equal(t, "'frob' not found", bare.Error())
}

func TestCoercionErrorUnwrap(t *testing.T) {
	inner := errors.New("syntax")
	err := &CoercionError{Token: "a", Want: "float", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), `"a"`)
}
