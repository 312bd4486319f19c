package mailer

import "errors"

var (
	// ErrNotConfigured indicates that neither an SMTP host nor a local
	// mail-submission agent is available.
	ErrNotConfigured = errors.New("mail delivery is not configured")
	// ErrInvalidConfig indicates an unusable mailer configuration value.
	ErrInvalidConfig = errors.New("invalid mailer configuration")
	// ErrInvalidMessage indicates a message missing its envelope addresses.
	ErrInvalidMessage = errors.New("invalid mail message")
	// ErrConnect indicates that the SMTP connection could not be established.
	ErrConnect = errors.New("failed to connect to SMTP server")
	// ErrProtocol indicates an unexpected SMTP reply code.
	ErrProtocol = errors.New("unexpected SMTP server response")
	// ErrAuth indicates that AUTH LOGIN was rejected.
	ErrAuth = errors.New("SMTP authentication failed")
	// ErrTLS indicates that the STARTTLS upgrade failed.
	ErrTLS = errors.New("STARTTLS negotiation failed")
	// ErrQuit indicates that the final QUIT was not acknowledged. The message
	// was already accepted at that point, so this is surfaced but non-fatal.
	ErrQuit = errors.New("SMTP QUIT failed")
	// ErrSend indicates a delivery failure in the sendmail fallback.
	ErrSend = errors.New("failed to submit mail message")
)
