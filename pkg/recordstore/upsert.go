package recordstore

import (
	"errors"

	"github.com/apex360/sitecms/pkg/slug"
	"github.com/apex360/sitecms/pkg/validator"
)

// Record is the contract a stored entity must satisfy. It is implemented by
// pointer types so Upsert can assign the id and finalized filename in place.
type Record interface {
	GetID() int
	SetID(id int)
	GetTitle() string
	GetFilename() string
	SetFilename(name string)
	// Validate checks required fields and returns validator.ValidationErrors
	// naming the missing ones.
	Validate() error
}

// Upsert validates incoming, resolves its id and filename, and merges it into
// records. On update the existing record is located by id and replaced; when
// the resolved filename differs from the stored one, the previous filename is
// returned as stale so the caller can delete the orphaned HTML file. On
// create the id is assigned as max existing id + 1 (1 for an empty store).
//
// Upsert never touches the filesystem; the caller persists the returned list
// and performs the stale-file deletion and page write.
func Upsert[T Record](records []T, incoming T, isUpdate bool, fallbackPrefix string) ([]T, T, string, error) {
	var zero T

	if err := incoming.Validate(); err != nil {
		return nil, zero, "", err
	}

	existingIndex := -1
	if isUpdate {
		for i, item := range records {
			if item.GetID() == incoming.GetID() {
				existingIndex = i
				break
			}
		}
		if existingIndex == -1 {
			return nil, zero, "", ErrNotFound
		}
	}

	if incoming.GetID() == 0 {
		maxID := 0
		for _, item := range records {
			if item.GetID() > maxID {
				maxID = item.GetID()
			}
		}
		incoming.SetID(maxID + 1)
	}

	desired := incoming.GetFilename()
	if desired == "" {
		desired = slug.Filename(incoming.GetTitle(), fallbackPrefix)
	}
	filename := slug.SanitizeFilename(desired)
	if filename == "" {
		return nil, zero, "", validator.ValidationErrors{{
			Field:   "filename",
			Message: "resolves to an empty filename",
		}}
	}
	incoming.SetFilename(filename)

	stale := ""
	if isUpdate {
		if prev := records[existingIndex].GetFilename(); prev != "" && prev != filename {
			stale = prev
		}
		records[existingIndex] = incoming
	} else {
		records = append(records, incoming)
	}

	return records, incoming, stale, nil
}

// DeleteByID removes the record with the given id and returns the remaining
// records together with the filename of the removed record's HTML page. When
// no record matches, ErrNotFound is returned and the input slice is
// unchanged.
func DeleteByID[T Record](records []T, id int) ([]T, string, error) {
	for i, item := range records {
		if item.GetID() == id {
			filename := item.GetFilename()
			remaining := make([]T, 0, len(records)-1)
			remaining = append(remaining, records[:i]...)
			remaining = append(remaining, records[i+1:]...)
			return remaining, filename, nil
		}
	}
	return records, "", errors.Join(ErrNotFound, errors.New("no record with requested id"))
}
