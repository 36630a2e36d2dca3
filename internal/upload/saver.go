package upload

import (
	"context"
	"fmt"
	"io"

	"clubapi/internal/storage"
)

// PublicPrefix is the path prefix under which stored files are served.
// Stored records embed PublicPrefix + key directly, so it must not change.
const PublicPrefix = "/uploads/"

// Saver runs the validation pipeline and writes accepted files to storage.
type Saver struct {
	validator *Validator
	store     storage.Storage
}

// NewSaver creates a Saver writing accepted files to store.
func NewSaver(validator *Validator, store storage.Storage) *Saver {
	return &Saver{validator: validator, store: store}
}

// Save validates the attempt and streams the content into storage. On accept
// it returns the relative reference path for the stored record. The size
// ceiling is enforced again during the copy, so a client understating its
// declared size still gets rejected and the partial object is removed.
func (s *Saver) Save(ctx context.Context, r io.Reader, meta FileMeta) (string, error) {
	key, err := s.validator.Validate(meta)
	if err != nil {
		return "", err
	}

	capped := &cappedReader{r: r, remaining: s.validator.MaxBytes()}
	if _, err := s.store.Put(ctx, key, capped, -1, storage.PutOptions{
		ContentType: meta.ContentType,
		Metadata:    map[string]string{"original-filename": meta.Filename},
	}); err != nil {
		if capped.exceeded {
			// remove whatever the backend kept of the oversized stream
			_ = s.store.Delete(ctx, key)
			return "", &ValidationError{Reason: fmt.Sprintf("file exceeds the maximum size of %d bytes", s.validator.MaxBytes())}
		}
		return "", fmt.Errorf("store upload: %w", err)
	}

	return PublicPrefix + key, nil
}

// cappedReader fails the stream once more than remaining bytes have been
// read, so oversized uploads abort mid-copy instead of filling the disk.
type cappedReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining < 0 {
		c.exceeded = true
		return 0, fmt.Errorf("size limit exceeded")
	}
	if int64(len(p)) > c.remaining+1 {
		p = p[:c.remaining+1]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		c.exceeded = true
		return n, fmt.Errorf("size limit exceeded")
	}
	return n, err
}
