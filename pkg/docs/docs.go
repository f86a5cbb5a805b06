// Package docs renders the command reference as a markdown tree, one
// page per command, grouped by namespace directory.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/numstack/numctl/pkg/numfn"
	"github.com/numstack/numctl/pkg/schema"
)

// Generate writes one markdown page per command under dir.
func Generate(dir string) error {
	for _, name := range schema.Names() {
		entry, _ := schema.Lookup(name)
		page := render(name, entry)

		path := pagePath(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("docs: %w", err)
		}
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return fmt.Errorf("docs: %w", err)
		}
	}
	return nil
}

// pagePath maps a dotted command name to dir/namespace/.../name.md.
func pagePath(dir, name string) string {
	segments := strings.Split(name, ".")
	parts := append([]string{dir}, segments[:len(segments)-1]...)
	parts = append(parts, segments[len(segments)-1]+".md")
	return filepath.Join(parts...)
}

func render(name string, entry schema.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "```\nnumctl %s %s\n```\n", name, entry.Signature())
	if fn, err := numfn.Library().Resolve(name); err == nil && fn.Doc != "" {
		fmt.Fprintf(&b, "\n%s\n", fn.Doc)
	}
	return b.String()
}
