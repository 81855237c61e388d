package connectors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

type FileMeta struct {
	Path     string
	Size     int64
	Modified time.Time
}

// ListFiles returns the files directly under root, in name order. A missing
// directory is not an error: the caller gets an empty result and treats it as
// "no candidates".
func ListFiles(root string) ([]FileMeta, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}

	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", root, err)
	}

	var files []FileMeta
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("error getting file info for %s: %w", entry.Name(), err)
		}
		files = append(files, FileMeta{
			Path:     filepath.Join(root, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	return files, nil
}
