package recordstore

import "errors"

var (
	// ErrNotFound indicates that no record with the requested id exists.
	ErrNotFound = errors.New("record not found")
	// ErrLoad indicates that the store file could not be read.
	ErrLoad = errors.New("failed to load record store")
	// ErrSave indicates that the store file could not be written.
	ErrSave = errors.New("failed to save record store")
)
