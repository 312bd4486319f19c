package recordstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Load reads a JSON array file into a slice of records. A missing file or
// content that is not a JSON array yields an empty slice, not an error: the
// store starts out empty and a corrupted file should not brick the admin UI.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, errors.Join(ErrLoad, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save overwrites the JSON array file with the given records, pretty-printed
// and with HTML left unescaped so the stored file stays human-readable. The
// write happens atomically while holding an exclusive lock on the path. The
// lock covers only the write itself; concurrent read-modify-write sequences
// can still race (last writer wins).
func Save[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.Join(ErrSave, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Join(ErrSave, err)
	}

	err := withFileLock(path, func() error {
		return atomic.WriteFile(path, &buf)
	})
	if err != nil {
		return errors.Join(ErrSave, err)
	}
	return nil
}
