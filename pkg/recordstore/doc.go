// Package recordstore persists ordered lists of records as pretty-printed
// JSON array files and implements the create/update/delete logic shared by
// all record types.
//
// The store is deliberately simple: the whole file is read into memory,
// mutated, and rewritten. Save takes an exclusive lock for the duration of
// the write only, so two concurrent mutations can race and the last writer
// wins. For a single-operator admin tool that is an accepted limitation.
//
// Upsert and DeleteByID are pure functions over record slices. They report
// which HTML file became stale but never delete or write pages themselves;
// the feature modules own those side effects.
package recordstore
