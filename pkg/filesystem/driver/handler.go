package driver

import (
	"context"
	"io"
)

// Handler is the narrow contract the tree engines need from an object
// store. Implementations must be safe for concurrent use.
type Handler interface {
	// Put streams a blob to the given key.
	Put(ctx context.Context, file io.Reader, key string, size uint64) error

	// Copy duplicates the blob at src under dst without downloading it.
	Copy(ctx context.Context, src string, dst string) error

	// Delete removes one or more blobs. It returns the keys that could
	// not be removed together with the last error encountered.
	Delete(ctx context.Context, keys []string) ([]string, error)

	// Source returns a signed URL for downloading the blob at key,
	// valid for ttl seconds. fileName is used for the attachment
	// disposition of the response.
	Source(ctx context.Context, key string, fileName string, ttl int64) (string, error)
}
