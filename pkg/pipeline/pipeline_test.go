package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numstack/numctl/pkg/errdefs"
)

func writeStage(t *testing.T, body string) *Adapter {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stage.lua")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return &Adapter{ScriptPath: path}
}

func TestRunStage(t *testing.T) {
	a := writeStage(t, `
function main(options)
  return "ran with " .. #options .. " options"
end
`)
	out, err := a.Run(strings.NewReader(""), []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, "ran with 2 options", out)
}

func TestRunStageReceivesOptionValues(t *testing.T) {
	a := writeStage(t, `
function main(options)
  return options[1] .. "," .. options[2]
end
`)
	out, err := a.Run(strings.NewReader(""), []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "x,y", out)
}

func TestRunStageNumberResult(t *testing.T) {
	a := writeStage(t, `
function main(options)
  return 6 * 7
end
`)
	out, err := a.Run(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, out)
}

func TestRunStageLeavesInputUnread(t *testing.T) {
	a := writeStage(t, `
function main(options)
  return true
end
`)
	in := strings.NewReader("upstream bytes")
	out, err := a.Run(in, nil)
	require.NoError(t, err)
	assert.Equal(t, true, out)
	assert.Equal(t, len("upstream bytes"), in.Len())
}

func TestMissingScript(t *testing.T) {
	a := &Adapter{ScriptPath: filepath.Join(t.TempDir(), "absent.lua")}
	_, err := a.Run(strings.NewReader(""), nil)
	var ae *errdefs.AdapterError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "not found")
	assert.Equal(t, errdefs.ExitFailed, errdefs.ExitCode(err))
}

func TestMissingEntryPoint(t *testing.T) {
	a := writeStage(t, `x = 1`)
	_, err := a.Run(strings.NewReader(""), nil)
	var ae *errdefs.AdapterError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "main")
}

func TestBrokenScript(t *testing.T) {
	a := writeStage(t, `function main( syntax error`)
	_, err := a.Run(strings.NewReader(""), nil)
	var ae *errdefs.AdapterError
	require.ErrorAs(t, err, &ae)
}

func TestStageError(t *testing.T) {
	a := writeStage(t, `
function main(options)
  error("stage blew up")
end
`)
	_, err := a.Run(strings.NewReader(""), nil)
	var ae *errdefs.AdapterError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "stage blew up")
}
