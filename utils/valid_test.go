package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"escapes html", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"strips control characters", "hel\x00lo\x1b", "hello"},
		{"plain text passes through", "Acme Corp", "Acme Corp"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.input))
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Jane.Doe@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", email)

	for _, bad := range []string{"", "not-an-email", "a@b", "user@.com", "user name@example.com"} {
		_, err := SanitizeEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsValidObjectIDHex(t *testing.T) {
	assert.True(t, IsValidObjectIDHex("64f0a1b2c3d4e5f601234567"))
	assert.True(t, IsValidObjectIDHex("64F0A1B2C3D4E5F601234567"))

	assert.False(t, IsValidObjectIDHex("too-short"))
	assert.False(t, IsValidObjectIDHex("64f0a1b2c3d4e5f60123456g"))
	assert.False(t, IsValidObjectIDHex("64f0a1b2c3d4e5f6012345678"))
	assert.False(t, IsValidObjectIDHex(""))
}

func TestValidateUploadType(t *testing.T) {
	for _, ok := range []string{"resume.pdf", "cv.doc", "letter.docx", "photo.JPG", "icon.png", "anim.gif"} {
		assert.NoError(t, ValidateUploadType(ok), ok)
	}

	for _, bad := range []string{"script.exe", "page.html", "archive.zip", "noext"} {
		assert.Error(t, ValidateUploadType(bad), bad)
	}
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("photo.jpeg"))
	assert.True(t, IsImageFile("PHOTO.PNG"))
	assert.False(t, IsImageFile("resume.pdf"))
	assert.False(t, IsImageFile("noext"))
}
