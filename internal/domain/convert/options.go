package convert

import (
	"time"

	"github.com/okian/playerdata/internal/domain/catalog"
	"github.com/okian/playerdata/pkg/logger"
)

// Option applies a configuration option to the Converter.
type Option func(*Converter)

// WithLogger sets the logger used for diagnostics such as skipped ordinals.
func WithLogger(l logger.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUpstreamLocation sets the time zone of structured-format dates, which
// carry no zone of their own.
func WithUpstreamLocation(loc *time.Location) Option {
	return func(c *Converter) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithCatalog replaces the built-in catalog for the catalog's ruleset.
func WithCatalog(cat catalog.Catalog) Option {
	return func(c *Converter) {
		c.catalogs[cat.Ruleset()] = cat
	}
}
