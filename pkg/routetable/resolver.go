package routetable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/routes"
)

// FileResolver resolves table references to route-table files under Dir.
//
// A reference ending in .yaml or .yml names a file directly. Any other reference
// is read as a dotted module path: "project.urls" resolves to project/urls.yaml.
type FileResolver struct {
	Dir string
}

// Resolve loads the route-table file named by ref.
func (f FileResolver) Resolve(ref string) ([]routes.Node, error) {
	path := f.Path(ref)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", endpoints.ErrTableNotFound, ref)
		}
		return nil, fmt.Errorf("stat route table %s: %w", ref, err)
	}
	return Load(path)
}

// Path returns the file location for ref.
func (f FileResolver) Path(ref string) string {
	switch filepath.Ext(ref) {
	case ".yaml", ".yml":
	default:
		ref = filepath.Join(strings.Split(ref, ".")...) + ".yaml"
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(f.Dir, ref)
}
