package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes the rendered diagram to the given path, creating the
// parent directory if it doesn't exist.
func WriteFile(diagram, path string) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(path, []byte(diagram), filePerm)
	if err != nil {
		return fmt.Errorf("writing diagram %s: %w", path, err)
	}

	return nil
}

// Write writes the rendered diagram to an arbitrary sink.
func Write(diagram string, w io.Writer) error {
	_, err := io.WriteString(w, diagram)
	if err != nil {
		return fmt.Errorf("writing diagram: %w", err)
	}

	return nil
}
