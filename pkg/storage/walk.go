package storage

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/sgl-project/abs-wagon/pkg/afero"
)

var errStopWalk = errors.New("stop walk")

// WalkFiles yields every regular file reachable from root. Directories are
// descended into but never yielded. A symbolic link at root is followed and
// files are yielded under root's own path. Links below root are neither
// followed nor yielded. Each range over the returned sequence starts a fresh
// traversal, and breaking out of the loop stops it. A traversal error is
// yielded once and ends the sequence.
func WalkFiles(fs afero.Fs, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		resolved, err := afero.ResolveSymlinks(fs, root)
		if err != nil {
			yield("", fmt.Errorf("walking %s: %w", root, err))
			return
		}

		err = afero.Walk(fs, resolved, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}
			if resolved != root {
				rel, err := filepath.Rel(resolved, path)
				if err != nil {
					return err
				}
				path = filepath.Join(root, rel)
			}
			if !yield(path, nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", fmt.Errorf("walking %s: %w", root, err))
		}
	}
}
