// Package pipeline adapts numctl to a generic pipeline runner: a stage
// is a Lua script at a fixed path whose main function receives the
// stage options and returns the stage result.
package pipeline

import (
	"fmt"
	"io"
	"os"

	lua "github.com/Shopify/go-lua"

	"github.com/numstack/numctl/pkg/errdefs"
)

// DefaultScriptPath is where the runner expects the stage script.
const DefaultScriptPath = "pipeline/stage.lua"

// Adapter runs one pipeline stage script.
type Adapter struct {
	// ScriptPath overrides DefaultScriptPath when non-empty.
	ScriptPath string
}

func (a *Adapter) path() string {
	if a.ScriptPath != "" {
		return a.ScriptPath
	}
	return DefaultScriptPath
}

// Run loads the stage script, checks its entry point, and calls
// main(options). The runner contract hands every stage the upstream
// input stream; this adapter accepts it but does not consume it. The
// script's return value comes back as a string, number, boolean, or
// nil.
func (a *Adapter) Run(_ io.Reader, options []string) (any, error) {
	path := a.path()
	if _, err := os.Stat(path); err != nil {
		return nil, &errdefs.AdapterError{Path: path, Msg: "stage script not found"}
	}

	l := lua.NewState()
	lua.OpenLibraries(l)

	if err := lua.DoFile(l, path); err != nil {
		return nil, &errdefs.AdapterError{Path: path, Msg: fmt.Sprintf("stage script failed to load: %v", err)}
	}

	l.Global("main")
	if !l.IsFunction(-1) {
		l.Pop(1)
		return nil, &errdefs.AdapterError{Path: path, Msg: "stage script defines no main function"}
	}

	pushOptions(l, options)
	if err := l.ProtectedCall(1, 1, 0); err != nil {
		return nil, &errdefs.AdapterError{Path: path, Msg: fmt.Sprintf("main failed: %v", err)}
	}
	defer l.Pop(1)
	return popValue(l)
}

// pushOptions pushes the options as a 1-indexed Lua table.
func pushOptions(l *lua.State, options []string) {
	l.CreateTable(len(options), 0)
	for i, opt := range options {
		l.PushString(opt)
		l.RawSetInt(-2, i+1)
	}
}

func popValue(l *lua.State) (any, error) {
	switch {
	case l.IsNil(-1):
		return nil, nil
	case l.IsBoolean(-1):
		return l.ToBoolean(-1), nil
	case l.IsNumber(-1):
		v, _ := l.ToNumber(-1)
		return v, nil
	case l.IsString(-1):
		s, _ := l.ToString(-1)
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported stage result type %s", lua.TypeNameOf(l, -1))
	}
}
