// Package loader abstracts where formula source text comes from.
// Implementations cover inline strings and byte slices, local files,
// arbitrary io.Readers, and HTTP(S) endpoints. A Loader is consumed
// once by unit.NewExecutableUnit, which compiles the source it yields.
package loader

import (
	"io"
	"net/url"
)

// Loader provides formula source from some origin. GetReader may be
// called more than once; each call returns a fresh reader over the
// same content. GetSourceURL identifies the origin for logging and for
// deriving executable unit ids.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
