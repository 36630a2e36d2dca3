// Package upload validates incoming files and moves them into storage.
// Nothing client-controlled reaches disk unchecked: the declared type must
// be on the image allow-list, the size ceiling is enforced both on the
// declared size and again while streaming, and the original filename is
// reduced to a safe alphabet before use.
package upload

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ValidationError is a rejection the client can act on. Its message is safe
// to return verbatim in a 400 response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// FileMeta describes an upload attempt before any bytes are accepted.
type FileMeta struct {
	Filename    string
	ContentType string
	Size        int64
}

// DefaultAllowedTypes is the image allow-list applied when none is
// configured.
var DefaultAllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Validator checks upload attempts against the type allow-list and size
// ceiling and derives safe storage filenames. It is safe for concurrent use.
type Validator struct {
	allowed  map[string]struct{}
	maxBytes int64

	// stamp state guarantees the filename prefix is monotonically distinct
	// even for uploads landing in the same millisecond.
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewValidator creates a Validator accepting the given content types up to
// maxBytes per file. An empty allow-list falls back to DefaultAllowedTypes.
func NewValidator(allowedTypes []string, maxBytes int64) *Validator {
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &Validator{
		allowed:  allowed,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// MaxBytes returns the configured per-file size ceiling.
func (v *Validator) MaxBytes() int64 {
	return v.maxBytes
}

// Validate checks the attempt and returns the storage filename to use, or a
// *ValidationError describing the rejection. All three checks must pass.
func (v *Validator) Validate(meta FileMeta) (string, error) {
	if _, ok := v.allowed[meta.ContentType]; !ok {
		return "", &ValidationError{Reason: fmt.Sprintf("file type %q is not allowed; only image uploads (JPEG, PNG, WEBP) are accepted", meta.ContentType)}
	}
	if meta.Size > v.maxBytes {
		return "", &ValidationError{Reason: fmt.Sprintf("file exceeds the maximum size of %d bytes", v.maxBytes)}
	}

	safe := SanitizeFilename(meta.Filename)
	if safe == "" {
		return "", &ValidationError{Reason: "filename contains no usable characters"}
	}
	return fmt.Sprintf("%d-%s", v.nextStamp(), safe), nil
}

// nextStamp returns the current Unix millisecond, bumped past the previous
// stamp when two uploads land in the same one.
func (v *Validator) nextStamp() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	stamp := v.now().UnixMilli()
	if stamp <= v.last {
		stamp = v.last + 1
	}
	v.last = stamp
	return stamp
}

// SanitizeFilename strips the client-supplied name down to a fixed safe
// alphabet: whitespace runs become underscores and every character outside
// letters, digits, dot, underscore and hyphen is dropped. Any path portion
// is discarded first.
func SanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))

	var b strings.Builder
	inSpace := false
	for _, r := range name {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !inSpace {
				b.WriteByte('_')
				inSpace = true
			}
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
			inSpace = false
		default:
			inSpace = false
		}
	}

	return strings.Trim(b.String(), ".")
}
