package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-tapescript/internal/helpers"
)

// FromDisk implements the Loader interface for program documents on the
// local filesystem.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a Loader for an absolute filesystem path. A file://
// prefix is accepted and stripped; any other scheme is rejected.
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrProgramNotAvailable)
	}

	path = filepath.Clean(path)

	if path == "" || path == "." || path == "/" || path == "\\" {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrProgramNotAvailable)
	}

	if !strings.Contains(path, "://") {
		path = "file://" + path
	}

	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}

	if u.Scheme != "file" {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	return &FromDisk{
		path:      path,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	noChkSum := fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)

	if l.sourceURL == nil {
		return noChkSum
	}

	reader, err := l.GetReader()
	if err != nil {
		return noChkSum
	}
	defer func() { _ = reader.Close() }()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noChkSum
	}

	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, chksum[:8])
}

// GetReader opens the file for reading.
func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	return os.Open(l.sourceURL.Path)
}

// GetSourceURL returns the source URL of the program.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
