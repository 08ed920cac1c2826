// This package wraps spf13's afero so file-system code can run against
// the OS in production and an in-memory fs in tests.

package afero

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sgl-project/abs-wagon/pkg/logging"
)

type File = afero.File

type Fs = afero.Fs

// DefaultDirMode is used for directories created on behalf of downloads.
const DefaultDirMode os.FileMode = 0o755

// DefaultFileMode is used for downloaded files.
const DefaultFileMode os.FileMode = 0o644

func NewOsFs() Fs {
	return afero.NewOsFs()
}

func NewMemMapFs() Fs {
	return afero.NewMemMapFs()
}

func Walk(fs Fs, root string, walkFn filepath.WalkFunc) error {
	return afero.Walk(fs, root, walkFn)
}

func WriteFile(fs Fs, filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(fs, filename, data, perm)
}

func ReadFile(fs Fs, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

func ReadDir(fs Fs, dirname string) ([]os.FileInfo, error) {
	return afero.ReadDir(fs, dirname)
}

// maxSymlinkHops bounds ResolveSymlinks, matching the kernel's ELOOP limit.
const maxSymlinkHops = 40

// ResolveSymlinks follows path while it is a symbolic link and returns the
// final target. Filesystems without symlink support return path unchanged.
// Only path itself is resolved, links in parent directories are left to the
// underlying filesystem.
func ResolveSymlinks(fs Fs, path string) (string, error) {
	lstater, ok := fs.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	current := path
	for range maxSymlinkHops {
		info, _, err := lstater.LstatIfPossible(current)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}

		target, err := reader.ReadlinkIfPossible(current)
		if err != nil {
			return "", fmt.Errorf("reading link %s: %w", current, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = target
	}
	return "", fmt.Errorf("resolving %s: too many levels of symbolic links", path)
}

// Exists returns true and nil error if the given path for a file or directory
// exists.
func Exists(fs Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// AtomicWriteReader streams r into destPath. The content lands in a temp file
// next to the destination first and is renamed over it once fully written, so
// a failed transfer never leaves a truncated file behind. Missing parent
// directories are created.
func AtomicWriteReader(
	fs Fs,
	destPath string,
	r io.Reader,
	fileMode os.FileMode,
	log logging.Interface,
) (int64, error) {
	destDir, destFile := filepath.Split(destPath)
	if destDir == "" {
		destDir = "."
	}
	if err := fs.MkdirAll(destDir, DefaultDirMode); err != nil {
		return 0, fmt.Errorf("creating directory %s: %w", destDir, err)
	}

	log.WithField("destPath", destPath).
		Debug("Writing file...")

	if isRenameBugged(fs) {
		log.WithField("fsType", fmt.Sprintf("%T", fs)).
			WithField("destPath", destPath).
			Debug("Renaming files in this fs implementation is bugged. " +
				"Skipping atomic rename and just writing into file directly")

		return writeInto(fs, destPath, r, fileMode)
	}

	tmp, err := afero.TempFile(fs, destDir, "."+destFile+"~")
	if err != nil {
		return 0, fmt.Errorf("creating tmp file for atomic write: %w", err)
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = fs.Remove(tmpName) }()

	n, err := writeInto(fs, tmpName, r, fileMode)
	if err != nil {
		return n, err
	}

	if err := fs.Rename(tmpName, destPath); err != nil {
		return n, fmt.Errorf("renaming %s to %s: %w", tmpName, destPath, err)
	}
	return n, nil
}

func writeInto(fs Fs, name string, r io.Reader, fileMode os.FileMode) (int64, error) {
	f, err := fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", name, err)
	}

	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", name, err)
	}
	return n, nil
}

// HACK(achebatu): MemMapFs has a bug when renaming files.
// Since we're using it only for tests, it's ok not to do atomic rename.
func isRenameBugged(fs Fs) bool {
	switch fs.(type) {
	case *afero.MemMapFs:
		return true
	default:
		return false
	}
}
