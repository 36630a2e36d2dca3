package upload

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(nil, 5*1024*1024)

	t.Run("gif is rejected", func(t *testing.T) {
		_, err := v.Validate(FileMeta{Filename: "anim.gif", ContentType: "image/gif", Size: 100})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "image/gif")
	})

	t.Run("png at exactly the ceiling is accepted", func(t *testing.T) {
		name, err := v.Validate(FileMeta{Filename: "big.png", ContentType: "image/png", Size: 5 * 1024 * 1024})

		assert.NoError(t, err)
		assert.Contains(t, name, "big.png")
	})

	t.Run("one byte over the ceiling is rejected", func(t *testing.T) {
		_, err := v.Validate(FileMeta{Filename: "big.png", ContentType: "image/png", Size: 5*1024*1024 + 1})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "maximum size")
	})

	t.Run("filename is sanitized and prefixed", func(t *testing.T) {
		name, err := v.Validate(FileMeta{Filename: "My Photo!@#.png", ContentType: "image/png", Size: 100})
		require.NoError(t, err)

		parts := strings.SplitN(name, "-", 2)
		require.Len(t, parts, 2)
		assert.Regexp(t, `^\d+$`, parts[0], "prefix is a numeric stamp")
		assert.Equal(t, "My_Photo.png", parts[1])
	})

	t.Run("identical names get distinct stored filenames", func(t *testing.T) {
		first, err := v.Validate(FileMeta{Filename: "photo.png", ContentType: "image/png", Size: 100})
		require.NoError(t, err)
		second, err := v.Validate(FileMeta{Filename: "photo.png", ContentType: "image/png", Size: 100})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("name reduced to nothing is rejected", func(t *testing.T) {
		_, err := v.Validate(FileMeta{Filename: "!!!", ContentType: "image/png", Size: 100})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("custom allow-list", func(t *testing.T) {
		custom := NewValidator([]string{"image/png"}, 1024)

		_, err := custom.Validate(FileMeta{Filename: "a.jpg", ContentType: "image/jpeg", Size: 10})
		assert.Error(t, err)

		_, err = custom.Validate(FileMeta{Filename: "a.png", ContentType: "image/png", Size: 10})
		assert.NoError(t, err)
	})
}

func TestValidator_StampMonotonic(t *testing.T) {
	v := NewValidator(nil, 1024)
	fixed := time.Now()
	v.now = func() time.Time { return fixed }

	// frozen clock still yields strictly increasing stamps
	a := v.nextStamp()
	b := v.nextStamp()
	c := v.nextStamp()
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Photo!@#.png", "My_Photo.png"},
		{"plain.png", "plain.png"},
		{"weird  spacing\tname.jpg", "weird_spacing_name.jpg"},
		{"../../etc/passwd", "passwd"},
		{"shell`$(rm)`.png", "shellrm.png"},
		{"UPPER-lower_0.9.webp", "UPPER-lower_0.9.webp"},
		{"!!!", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
