// Package utility - Test sanitize tên file và trích phần mở rộng.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"C:\\Users\\a\\cert.pdf", "cert.pdf"},
		{"weird name?.png", "weird_name_.png"},
		{"tiếng việt.png", "ti_ng_vi_t.png"},
		{".hidden", "hidden"},
		{"..", "file"},
		{"", "file"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"logo.png", "png"},
		{"Logo.PNG", "png"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"trailingdot.", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FileExtension(tc.in), "input %q", tc.in)
	}
}
