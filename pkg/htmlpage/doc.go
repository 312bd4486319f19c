// Package htmlpage turns record content into static HTML files.
//
// FormatContent implements the list-aware text-to-HTML formatter shared by
// all page templates; Writer owns the target directory and the write/remove
// side effects. The per-record-type templates themselves live in the feature
// modules so each renderer receives only its own sanitized data.
package htmlpage
