package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes a file by streaming into a temporary file in the
// same directory and renaming it over path. Readers never observe a
// partially written file, and a failed write leaves path untouched.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	return writeVia(path, perm, write, os.Rename)
}

// WriteFileExclusive is WriteFileAtomic for a file that must not exist yet.
// The temporary file is hard-linked into place, so a path created by
// anyone else in the meantime is left alone and the returned error
// matches os.ErrExist.
func WriteFileExclusive(path string, perm os.FileMode, write func(w io.Writer) error) error {
	return writeVia(path, perm, write, func(tmp, path string) error {
		if err := os.Link(tmp, path); err != nil {
			return err
		}
		return os.Remove(tmp)
	})
}

func writeVia(path string, perm os.FileMode, write func(w io.Writer) error, publish func(tmp, path string) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return publish(tmp.Name(), path)
}
