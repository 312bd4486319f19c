// Package slug derives filesystem- and URL-safe filenames from record
// titles.
//
// Make produces a lowercase hyphenated slug with Spanish stopwords removed
// and diacritics folded to ASCII. Filename wraps it into a ".html" name with
// a timestamp fallback for titles that slug to nothing. SanitizeFilename
// cleans filenames supplied explicitly through the admin UI while preserving
// their case.
//
// Usage:
//
//	slug.Filename("Curso de Liderazgo Ágil", "curso") // "curso-liderazgo-agil.html"
//	slug.SanitizeFilename("My Report.html")           // "My-Report.html"
package slug
