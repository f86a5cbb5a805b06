// Package numfn is the function library the CLI dispatches into: a tree
// of dot-addressable namespaces (linalg, random, matrix, matlib under the
// root) whose leaves are gonum-backed callables. Name resolution walks
// declared namespace segments; it is independent of the command schema
// and the two can disagree, which surfaces as a not-found error.
package numfn

import (
	"sort"
	"strings"
	"sync"

	"github.com/numstack/numctl/pkg/config"
	"github.com/numstack/numctl/pkg/errdefs"
)

// Func is one callable in the library.
type Func struct {
	// Doc is the one-line synopsis shown by help and makedocs.
	Doc string
	// Call invokes the function with coerced arguments.
	Call func(c *CallContext) (any, error)
}

// CallContext carries one invocation's coerced arguments and the runtime
// configuration. Ownership is local to one dispatch call.
type CallContext struct {
	Config *config.Config
	Args   []any
	Kwargs map[string]any
}

// Namespace is one node of the library tree.
type Namespace struct {
	funcs    map[string]*Func
	children map[string]*Namespace
}

func newNamespace() *Namespace {
	return &Namespace{
		funcs:    make(map[string]*Func),
		children: make(map[string]*Namespace),
	}
}

func (ns *Namespace) add(name, doc string, call func(*CallContext) (any, error)) {
	ns.funcs[name] = &Func{Doc: doc, Call: call}
}

func (ns *Namespace) child(name string) *Namespace {
	c, ok := ns.children[name]
	if !ok {
		c = newNamespace()
		ns.children[name] = c
	}
	return c
}

// Resolve walks each dot-separated segment of name as a namespace lookup
// and returns the leaf function.
func (ns *Namespace) Resolve(name string) (*Func, error) {
	segments := strings.Split(name, ".")
	cur := ns
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur.children[seg]
		if !ok {
			return nil, &errdefs.NotFoundError{Name: name}
		}
		cur = next
	}
	fn, ok := cur.funcs[segments[len(segments)-1]]
	if !ok {
		return nil, &errdefs.NotFoundError{Name: name}
	}
	return fn, nil
}

// Names returns every dotted function name in the tree, sorted.
func (ns *Namespace) Names() []string {
	var out []string
	ns.collect("", &out)
	sort.Strings(out)
	return out
}

func (ns *Namespace) collect(prefix string, out *[]string) {
	for name := range ns.funcs {
		*out = append(*out, prefix+name)
	}
	for name, child := range ns.children {
		child.collect(prefix+name+".", out)
	}
}

var (
	libraryOnce sync.Once
	library     *Namespace
)

// Library returns the populated function tree. The tree is built once
// and never mutated afterwards.
func Library() *Namespace {
	libraryOnce.Do(func() {
		library = newNamespace()
		registerArithmetic(library)
		registerMisc(library)
		registerTrig(library)
		registerRounding(library)
		registerSums(library)
		registerExpLog(library)
		registerFloatFn(library)
		registerConstruct(library)
		registerLinalg(library.child("linalg"))
		registerMatlib(library.child("matlib"))
		registerMatrixOps(library.child("matrix"))
		registerRandom(library.child("random"))
	})
	return library
}
