package mailer

import "time"

// Encryption selects how the SMTP connection is secured.
type Encryption string

const (
	// EncryptionTLS upgrades a plaintext connection via STARTTLS (port 587).
	EncryptionTLS Encryption = "tls"
	// EncryptionSSL wraps the connection in TLS at connect time (port 465).
	EncryptionSSL Encryption = "ssl"
	// EncryptionNone keeps the connection in plaintext.
	EncryptionNone Encryption = "none"
)

// Config holds SMTP delivery configuration. Host is optional: an empty host
// is a valid, reported configuration state that makes New fall back to a
// local mail-submission agent (or to ErrNotConfigured when none exists),
// never a startup failure.
type Config struct {
	Host       string        `env:"SMTP_HOST"`
	Port       int           `env:"SMTP_PORT" envDefault:"587"`
	Username   string        `env:"SMTP_USERNAME"`
	Password   string        `env:"SMTP_PASSWORD"`
	Encryption Encryption    `env:"SMTP_ENCRYPTION" envDefault:"tls"`
	Sender     string        `env:"SMTP_SENDER"`
	Timeout    time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
}
