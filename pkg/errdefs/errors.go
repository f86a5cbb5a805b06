// Package errdefs defines the error taxonomy shared by the CLI shell,
// dispatcher, and coercion layer, and the process exit code each class
// maps to.
package errdefs

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitNoArgs   = 1
	ExitFailed   = 2
	ExitNotFound = 3
	ExitInvalid  = 4
)

// ExitCoder is implemented by errors that carry a process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the exit code for err. Errors outside the taxonomy
// map to ExitFailed.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailed
}

// NotFoundError reports a command name that resolves neither in the
// command schema nor in the function library.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("'%s' not found (did you mean '%s'?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("'%s' not found", e.Name)
}

// ExitCode implements ExitCoder.
func (e *NotFoundError) ExitCode() int { return ExitNotFound }

// ArgumentError reports an arity violation, an undeclared keyword, or a
// missing positional argument with no stdin fallback available.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// ExitCode implements ExitCoder.
func (e *ArgumentError) ExitCode() int { return ExitInvalid }

// CoercionError reports a token that could not be converted to its
// declared type.
type CoercionError struct {
	Token string
	Want  string
	Err   error
}

func (e *CoercionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %v", e.Token, e.Want, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Token, e.Want)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ExitCode implements ExitCoder.
func (e *CoercionError) ExitCode() int { return ExitInvalid }

// CallError reports a failure from the underlying library call itself.
type CallError struct {
	Command string
	Err     error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("'%s' failed - %v", e.Command, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// ExitCode implements ExitCoder.
func (e *CallError) ExitCode() int { return ExitFailed }

// AdapterError reports a pipeline stage script or entry point that is
// missing or unusable.
type AdapterError struct {
	Path string
	Msg  string
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("pipeline adapter: %s: %s", e.Path, e.Msg)
}

// ExitCode implements ExitCoder.
func (e *AdapterError) ExitCode() int { return ExitFailed }

// NoArgsError reports an invocation with no command token at all.
type NoArgsError struct{}

func (e *NoArgsError) Error() string { return "no arguments" }

// ExitCode implements ExitCoder.
func (e *NoArgsError) ExitCode() int { return ExitNoArgs }
