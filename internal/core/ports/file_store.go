package ports

import (
	"context"
	"io"
)

// FileStore abstracts the external object-storage worker.
type FileStore interface {
	// Put streams the file to the worker under {kind}/{id} and returns the
	// storage key the worker replies with.
	Put(ctx context.Context, kind, id string, body io.Reader) (string, error)
	// PublicURL builds the public bucket URL for a storage key.
	PublicURL(key string) string
}
