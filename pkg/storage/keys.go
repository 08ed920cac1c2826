package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// KeySeparator separates the segments of a remote key.
const KeySeparator = "/"

// MapLocalToRemote derives the remote key for filePath, which must live under root.
//
// The root is stripped from the path, host separators become "/", and a
// non-empty prefix is joined to the remainder with exactly one "/". When
// filePath is root itself the key is the prefix, or the file's base name if
// no prefix is set.
func MapLocalToRemote(root, filePath, prefix string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(filePath))
	if err != nil {
		return "", NewError(ErrInvalidPath, "map key", "", filePath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", NewError(ErrInvalidPath, "map key", "", filePath,
			fmt.Errorf("path is outside of %s", root))
	}

	prefix = strings.Trim(prefix, KeySeparator)
	if rel == "." {
		if prefix != "" {
			return prefix, nil
		}
		return filepath.Base(filePath), nil
	}

	return JoinKey(prefix, filepath.ToSlash(rel)), nil
}

// JoinKey joins key segments with a single "/" and drops empty segments.
func JoinKey(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, KeySeparator)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, KeySeparator)
}

// LocalPathForKey resolves where key is stored under root. Keys that would
// escape root are rejected.
func LocalPathForKey(root, key string) (string, error) {
	trimmed := strings.TrimLeft(key, KeySeparator)
	if trimmed == "" {
		return "", NewError(ErrInvalidPath, "resolve download path", "", key, fmt.Errorf("empty key"))
	}
	for _, segment := range strings.Split(trimmed, KeySeparator) {
		if segment == ".." {
			return "", NewError(ErrInvalidPath, "resolve download path", "", key,
				fmt.Errorf("key escapes %s", root))
		}
	}

	return filepath.Join(root, filepath.FromSlash(trimmed)), nil
}

// IsDirectoryKey reports whether key is a zero-length directory placeholder.
func IsDirectoryKey(key string) bool {
	return strings.HasSuffix(key, KeySeparator)
}
