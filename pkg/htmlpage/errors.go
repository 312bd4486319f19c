package htmlpage

import "errors"

// ErrWrite indicates a filesystem failure while writing or removing a
// generated page.
var ErrWrite = errors.New("failed to write static page")
