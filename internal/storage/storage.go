package storage

import (
	"context"
	"io"
)

// Package storage contains the object-store abstraction used for entry
// visuals. Implementations must avoid using local disk and rely on streaming
// I/O only.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object, including the
// durable URL under which it can be retrieved.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
	URL  string
}

// Storage is a reusable, S3-compatible object storage client interface.
// It is safe for concurrent use by multiple goroutines.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and
	// options, returning its info including the durable retrieval URL.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// ObjectURL returns the durable retrieval URL for a key without touching
	// the backend.
	ObjectURL(key string) string
}
