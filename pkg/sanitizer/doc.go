// Package sanitizer normalizes untrusted form input before validation.
//
// Trim is the default cleanup for free-text fields. SingleLine additionally
// strips CR/LF and is the header-injection defense for values interpolated
// into mail headers (sender name, reply-to address).
package sanitizer
