package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded blobs. Save stores the content under the
// given name and returns the stored name; an existing file with the same
// name is silently overwritten.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
