package service

import (
	"context"
	"io"

	"github.com/amandev/folio/internal/content"
)

// ContentService loads, checks and writes portfolio content.
type ContentService interface {
	// Load returns the store for path: built-in content when path is
	// empty, a SQLite bundle for .db files, YAML or JSON otherwise.
	Load(ctx context.Context, path string) (*content.Store, error)
	// Validate shape-checks the content at path. A non-nil error means the
	// file could not be read at all; problems inside it come back as the
	// slice.
	Validate(ctx context.Context, path string) ([]error, error)
	// Export writes store as YAML or JSON.
	Export(ctx context.Context, store *content.Store, w io.Writer, format content.Format) error
	// WriteBundle writes store to a new SQLite bundle at path.
	WriteBundle(ctx context.Context, store *content.Store, path string, opts BundleOptions) (*BundleResult, error)
}

type BundleOptions struct {
	// Force replaces an existing file.
	Force bool
}

type BundleResult struct {
	Path   string
	Counts content.Counts
}
