package infercast

import (
	"github.com/infercast/infercast/pkg/catalogs"
	"github.com/infercast/infercast/pkg/errors"
)

// Option is a function that configures a Client.
type Option func(*config) error

// config is the configuration assembled from options.
type config struct {
	catalog *catalogs.Catalog
}

// WithCatalog supplies a custom GPU/instance catalog instead of the embedded
// defaults.
func WithCatalog(catalog *catalogs.Catalog) Option {
	return func(cfg *config) error {
		if catalog == nil {
			return errors.NewValidationError("catalog", nil, "must not be nil")
		}
		cfg.catalog = catalog
		return nil
	}
}
