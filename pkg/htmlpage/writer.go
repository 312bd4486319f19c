package htmlpage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Writer persists rendered HTML documents into a target directory, one file
// per record.
type Writer struct {
	dir string
}

// NewWriter returns a Writer that stores pages under dir. The directory is
// created lazily on the first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the directory pages are written to.
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the full path a page with the given filename is written to.
func (w *Writer) Path(filename string) string {
	return filepath.Join(w.dir, filename)
}

// Write ensures the target directory exists and writes the rendered document.
// Any filesystem failure is wrapped in ErrWrite.
func (w *Writer) Write(filename, document string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return errors.Join(ErrWrite, err)
	}
	if err := os.WriteFile(w.Path(filename), []byte(document), 0o644); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

// Remove deletes a previously generated page. A missing file is not an
// error: the record and its page may already be out of sync after a partial
// failure, and removal is idempotent cleanup.
func (w *Writer) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	if err := os.Remove(w.Path(filename)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrWrite, err)
	}
	return nil
}
