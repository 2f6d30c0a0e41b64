// Package embedded provides the default GPU and cloud-instance catalogs,
// compiled into the binary so the estimator works offline with no
// configuration.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/infercast/infercast/pkg/catalogs"
)

//go:embed files/*.yaml
var catalogFS embed.FS

// New loads the compiled-in catalog.
func New() (*catalogs.Catalog, error) {
	sub, err := fs.Sub(catalogFS, "files")
	if err != nil {
		return nil, fmt.Errorf("opening embedded catalog files: %w", err)
	}

	catalog, err := catalogs.Load(sub)
	if err != nil {
		return nil, fmt.Errorf("loading embedded catalog: %w", err)
	}

	return catalog, nil
}
