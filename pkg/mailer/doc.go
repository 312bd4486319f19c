// Package mailer delivers contact-form mail.
//
// The primary transport is a minimal hand-rolled SMTP client (SMTPClient)
// that speaks the wire protocol directly over a TCP or TLS socket: it reads
// multi-line replies, negotiates STARTTLS in place, authenticates with AUTH
// LOGIN, and transmits one dot-stuffed message per connection. Keeping the
// protocol explicit makes the exact command/reply sequence testable against
// a fake in-memory server.
//
// When no SMTP host is configured, New falls back to piping the message to a
// local sendmail binary; when that is also missing, ErrNotConfigured is
// returned so callers can report the condition instead of crashing.
package mailer
