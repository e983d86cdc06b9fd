package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMimeType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.png", "image/png"},
		{"PHOTO.PNG", "image/png"},
		{"scan.JPeG", "image/jpeg"},
		{"notes.txt", "text/plain"},
		{"/docs/report.pdf", "application/pdf"},
		{"data.json", "application/json"},
		{"archive.tar.gz", "application/gzip"},
		{"index.html", "text/html"},
		{"favicon.ico", "image/x-icon"},
		{"Makefile", DefaultMimeType},
		{"unknown.xyz", DefaultMimeType},
		{"", DefaultMimeType},
		{".hidden", DefaultMimeType},
		{"trailing.", DefaultMimeType},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMimeType(tt.filename))
		})
	}
}
