package mailer

import (
	"context"
	"errors"
)

// Sender delivers one mail message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds a Sender from configuration. An SMTP host selects the protocol
// client; without one, a local mail-submission agent is used when present.
// Neither being available returns ErrNotConfigured, which the contact
// handler reports as a delivery-configuration failure rather than crashing.
func New(cfg Config, opts ...Option) (Sender, error) {
	if cfg.Host != "" {
		return NewSMTPClient(cfg, opts...)
	}
	if path, ok := lookupSendmail(); ok {
		return &sendmailSender{path: path, sender: cfg.Sender}, nil
	}
	return nil, errors.Join(ErrNotConfigured, errors.New("no SMTP host and no local sendmail binary"))
}

// Unavailable returns a Sender that rejects every message with the given
// configuration error. Lets the rest of the service run when mail delivery
// cannot be set up.
func Unavailable(err error) Sender {
	return unavailableSender{err: err}
}

type unavailableSender struct{ err error }

func (s unavailableSender) Send(context.Context, Message) error {
	return errors.Join(ErrNotConfigured, s.err)
}
