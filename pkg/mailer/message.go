package mailer

import (
	"errors"
	"fmt"
	"strings"
)

// Message is a plain-text mail message. Header values must already be free
// of CR/LF; the contact handler strips them before building the message.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Validate checks that the envelope addresses are present.
func (m Message) Validate() error {
	if m.From == "" {
		return errors.Join(ErrInvalidMessage, errors.New("missing From address"))
	}
	if m.To == "" {
		return errors.Join(ErrInvalidMessage, errors.New("missing To address"))
	}
	return nil
}

// Bytes renders the full message: header block, blank line, body. Lines are
// CRLF-terminated as SMTP requires.
func (m Message) Bytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	if m.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", m.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")

	body := normalizeCRLF(m.Body)
	b.WriteString(body)
	if !strings.HasSuffix(body, "\r\n") {
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// normalizeCRLF converts bare LF line endings to CRLF.
func normalizeCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// dotStuff escapes lines starting with "." so the DATA terminator cannot be
// forged from message content. Input must already be CRLF-normalized.
func dotStuff(data []byte) []byte {
	s := string(data)
	if strings.HasPrefix(s, ".") {
		s = "." + s
	}
	return []byte(strings.ReplaceAll(s, "\r\n.", "\r\n.."))
}
