// Package storage abstracts where uploaded files live. Keys are bare
// sanitized filenames; the public reference path /uploads/<key> stays stable
// across backends because stored records embed it directly.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when the key has no object.
var ErrNotFound = errors.New("object not found")

// PutOptions define optional parameters for storing objects.
type PutOptions struct {
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// Storage stores and retrieves uploaded files. Implementations must be safe
// for concurrent use and must not leave partially written objects behind
// when Put fails mid-stream: either the backend cleans up itself or Delete
// on the same key removes the remains.
type Storage interface {
	// Put stores the object under key, streaming from r. size may be -1
	// when unknown.
	Put(ctx context.Context, key string, r io.Reader, size int64, opt PutOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
