package storage

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/sgl-project/abs-wagon/pkg/afero"
)

// DefaultContentType is used when nothing better can be determined.
const DefaultContentType = "application/octet-stream"

// DetectContentType infers the content type of a local file. The extension
// is consulted first, then the leading bytes of the file.
func DetectContentType(fs afero.Fs, path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}

	f, err := fs.Open(path)
	if err != nil {
		return DefaultContentType
	}
	defer func() { _ = f.Close() }()

	detected, err := mimetype.DetectReader(f)
	if err != nil || detected == nil {
		return DefaultContentType
	}
	return detected.String()
}
