package numfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numstack/numctl/pkg/config"
	"github.com/numstack/numctl/pkg/errdefs"
	"github.com/numstack/numctl/pkg/schema"
)

func call(t *testing.T, name string, args []any, kwargs map[string]any) (any, error) {
	t.Helper()
	fn, err := Library().Resolve(name)
	require.NoError(t, err, "resolve %s", name)
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	return fn.Call(&CallContext{Config: config.Default(), Args: args, Kwargs: kwargs})
}

func mustCall(t *testing.T, name string, args []any, kwargs map[string]any) any {
	t.Helper()
	out, err := call(t, name, args, kwargs)
	require.NoError(t, err, "call %s", name)
	return out
}

func TestEveryCommandResolves(t *testing.T) {
	lib := Library()
	for _, name := range schema.Names() {
		_, err := lib.Resolve(name)
		assert.NoError(t, err, "command %s has no implementation", name)
	}
}

func TestEveryFunctionHasDoc(t *testing.T) {
	lib := Library()
	for _, name := range lib.Names() {
		fn, err := lib.Resolve(name)
		require.NoError(t, err)
		assert.NotEmpty(t, fn.Doc, "function %s has no synopsis", name)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Library().Resolve("linalg.frobnicate")
	var nf *errdefs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "linalg.frobnicate", nf.Name)

	_, err = Library().Resolve("nosuchspace.det")
	require.ErrorAs(t, err, &nf)
}
