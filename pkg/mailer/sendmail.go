package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// sendmailPaths are the conventional locations of the local mail-submission
// agent, checked before falling back to PATH lookup.
var sendmailPaths = []string{
	"/usr/sbin/sendmail",
	"/usr/lib/sendmail",
}

func lookupSendmail() (string, bool) {
	for _, p := range sendmailPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	if p, err := exec.LookPath("sendmail"); err == nil {
		return p, true
	}
	return "", false
}

// sendmailSender pipes messages to a local sendmail binary. Recipients are
// taken from the message headers (-t); -i keeps a lone dot line from
// terminating the input early.
type sendmailSender struct {
	path   string
	sender string
}

func (s *sendmailSender) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = s.sender
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, s.path, "-t", "-i")
	cmd.Stdin = bytes.NewReader(msg.Bytes())
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Join(ErrSend, fmt.Errorf("%s: %w (%s)", s.path, err, bytes.TrimSpace(out)))
	}
	return nil
}
