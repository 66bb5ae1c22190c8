package paths

import (
	"os"
)

const (
	DirPerm  = 0755
	FilePerm = 0644
)

// WriteFile writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory must already exist; a missing one
// yields an error wrapping fs.ErrNotExist and nothing is written.
func WriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
