package storage

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/sgl-project/abs-wagon/pkg/afero"
)

// ErrChecksumMismatch is returned when downloaded content does not match
// the MD5 recorded by the store.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// FileMD5 computes the MD5 digest of a local file, as stored in the
// Content-MD5 property of a blob.
func FileMD5(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for MD5 calculation: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("failed to calculate MD5: %w", err)
	}
	return h.Sum(nil), nil
}

// NewValidatingReader checks the MD5 of everything read from r. Once r is
// exhausted a mismatch is reported instead of io.EOF, so a consumer that
// writes to a temporary file never commits corrupt content. An empty
// expected digest disables validation.
func NewValidatingReader(r io.Reader, expected []byte) io.Reader {
	if len(expected) == 0 {
		return r
	}
	return &validatingReader{reader: r, hash: md5.New(), expected: expected}
}

type validatingReader struct {
	reader   io.Reader
	hash     hash.Hash
	expected []byte
}

func (vr *validatingReader) Read(p []byte) (int, error) {
	n, err := vr.reader.Read(p)
	if n > 0 {
		_, _ = vr.hash.Write(p[:n])
	}

	if errors.Is(err, io.EOF) {
		if actual := vr.hash.Sum(nil); !bytes.Equal(actual, vr.expected) {
			return n, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch,
				base64.StdEncoding.EncodeToString(vr.expected),
				base64.StdEncoding.EncodeToString(actual))
		}
	}
	return n, err
}
