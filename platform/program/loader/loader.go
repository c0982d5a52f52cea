package loader

import (
	"io"
	"net/url"
)

// Loader is the source a program document is read from. Implementations
// cover in-memory tokens, strings, byte slices and files on disk; each
// GetReader call yields a fresh reader over the same content.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
