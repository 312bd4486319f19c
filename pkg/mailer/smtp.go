package mailer

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// SMTPClient transmits messages over a raw SMTP session: greeting, EHLO,
// optional STARTTLS upgrade, optional AUTH LOGIN, envelope, DATA, QUIT. The
// sequence and expected reply codes follow RFC 5321 as implemented by the
// usual submission servers (Gmail, Postfix) on ports 587 and 465.
type SMTPClient struct {
	cfg       Config
	tlsConfig *tls.Config
	log       *slog.Logger
}

// Option configures the SMTP client.
type Option func(*SMTPClient)

// WithTLSConfig overrides the TLS client configuration. Used by tests to
// accept self-signed certificates.
func WithTLSConfig(tc *tls.Config) Option {
	return func(c *SMTPClient) { c.tlsConfig = tc }
}

// WithLogger supplies a logger for non-fatal session events (QUIT failures).
func WithLogger(l *slog.Logger) Option {
	return func(c *SMTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// NewSMTPClient validates the configuration and returns a client. The
// connection itself is established per Send call.
func NewSMTPClient(cfg Config, opts ...Option) (*SMTPClient, error) {
	if cfg.Host == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("SMTP host is empty"))
	}
	switch cfg.Encryption {
	case EncryptionTLS, EncryptionSSL, EncryptionNone:
	case "":
		cfg.Encryption = EncryptionNone
	default:
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("unknown encryption mode %q", cfg.Encryption))
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := &SMTPClient{cfg: cfg, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send delivers one message over a fresh connection. The connection is
// closed on both success and failure paths. Any unexpected reply code aborts
// the whole send with an error carrying the raw server response.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = c.cfg.Sender
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))
	dialer := net.Dialer{Timeout: c.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Join(ErrConnect, err)
	}

	if c.cfg.Encryption == EncryptionSSL {
		tlsConn := tls.Client(conn, c.tlsClientConfig())
		_ = tlsConn.SetDeadline(time.Now().Add(c.cfg.Timeout))
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			_ = conn.Close()
			return errors.Join(ErrConnect, err)
		}
		_ = tlsConn.SetDeadline(time.Time{})
		conn = tlsConn
	}

	s := &session{conn: conn, r: bufio.NewReader(conn), timeout: c.cfg.Timeout}
	defer func() { _ = s.conn.Close() }()

	if err := s.expect("220", ErrProtocol); err != nil {
		return err
	}

	helo := localHostname()
	if err := s.cmd("EHLO "+helo, "250", ErrProtocol); err != nil {
		return err
	}

	// STARTTLS must succeed or the send aborts; there is no silent
	// plaintext fallback.
	if c.cfg.Encryption == EncryptionTLS {
		if err := s.cmd("STARTTLS", "220", ErrTLS); err != nil {
			return err
		}
		if err := s.upgradeTLS(c.tlsClientConfig()); err != nil {
			return errors.Join(ErrTLS, err)
		}
		if err := s.cmd("EHLO "+helo, "250", ErrProtocol); err != nil {
			return err
		}
	}

	if c.cfg.Username != "" && c.cfg.Password != "" {
		b64 := base64.StdEncoding.EncodeToString
		if err := s.cmd("AUTH LOGIN", "334", ErrAuth); err != nil {
			return err
		}
		if err := s.cmd(b64([]byte(c.cfg.Username)), "334", ErrAuth); err != nil {
			return err
		}
		if err := s.cmd(b64([]byte(c.cfg.Password)), "235", ErrAuth); err != nil {
			return err
		}
	}

	if err := s.cmd(fmt.Sprintf("MAIL FROM: <%s>", msg.From), "250", ErrProtocol); err != nil {
		return err
	}
	if err := s.cmd(fmt.Sprintf("RCPT TO: <%s>", msg.To), "250", ErrProtocol); err != nil {
		return err
	}
	if err := s.cmd("DATA", "354", ErrProtocol); err != nil {
		return err
	}
	if err := s.write(dotStuff(msg.Bytes())); err != nil {
		return errors.Join(ErrProtocol, err)
	}
	if err := s.cmd(".", "250", ErrProtocol); err != nil {
		return err
	}

	// The message is accepted at this point; a QUIT failure is surfaced in
	// the logs but does not fail the delivery.
	if err := s.cmd("QUIT", "221", ErrQuit); err != nil {
		c.log.WarnContext(ctx, "SMTP session ended abnormally after accepted delivery",
			slog.Any("error", err))
	}
	return nil
}

func (c *SMTPClient) tlsClientConfig() *tls.Config {
	if c.tlsConfig != nil {
		return c.tlsConfig.Clone()
	}
	return &tls.Config{ServerName: c.cfg.Host}
}

// session is one synchronous SMTP exchange over a single connection. Every
// read and write is bounded by the configured timeout so a stalled server
// fails the send instead of hanging.
type session struct {
	conn    net.Conn
	r       *bufio.Reader
	timeout time.Duration
}

func (s *session) upgradeTLS(cfg *tls.Config) error {
	tlsConn := tls.Client(s.conn, cfg)
	_ = tlsConn.SetDeadline(time.Now().Add(s.timeout))
	if err := tlsConn.Handshake(); err != nil {
		return err
	}
	_ = tlsConn.SetDeadline(time.Time{})
	s.conn = tlsConn
	s.r = bufio.NewReader(tlsConn)
	return nil
}

func (s *session) write(p []byte) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.timeout))
	_, err := s.conn.Write(p)
	return err
}

func (s *session) writeLine(line string) error {
	return s.write([]byte(line + "\r\n"))
}

// readReply accumulates a full, possibly multi-line SMTP reply. A line whose
// fourth character is a space terminates the reply; a hyphen there continues
// it. Returns the three-digit code of the final line and the raw reply text.
func (s *session) readReply() (string, string, error) {
	var lines []string
	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.timeout))
		line, err := s.r.ReadString('\n')
		if err != nil {
			return "", strings.Join(lines, "\n"), err
		}
		line = strings.TrimRight(line, "\r\n")
		lines = append(lines, line)

		if len(line) == 3 {
			return line, strings.Join(lines, "\n"), nil
		}
		if len(line) < 4 {
			return "", strings.Join(lines, "\n"), fmt.Errorf("malformed reply line %q", line)
		}
		if line[3] == ' ' {
			return line[:3], strings.Join(lines, "\n"), nil
		}
	}
}

// expect reads a reply and verifies its code, wrapping mismatches and
// transport failures in the given sentinel.
func (s *session) expect(want string, sentinel error) error {
	code, raw, err := s.readReply()
	if err != nil {
		return errors.Join(sentinel, err)
	}
	if code != want {
		return errors.Join(sentinel, fmt.Errorf("expected %s, server replied: %s", want, raw))
	}
	return nil
}

// cmd sends one command line and verifies the reply code.
func (s *session) cmd(line, want string, sentinel error) error {
	if err := s.writeLine(line); err != nil {
		return errors.Join(sentinel, err)
	}
	return s.expect(want, sentinel)
}

func localHostname() string {
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "localhost"
}
