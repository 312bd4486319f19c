package contact

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/apex360/sitecms/pkg/logger"
	"github.com/apex360/sitecms/pkg/mailer"
	"github.com/apex360/sitecms/pkg/sanitizer"
	"github.com/apex360/sitecms/pkg/validator"
)

// Config holds the contact-form delivery settings.
type Config struct {
	Recipient string `env:"CONTACT_RECIPIENT" envDefault:"contacto@apex360.cl"`
	Subject   string `env:"CONTACT_SUBJECT" envDefault:"Consulta desde el sitio Apex 360"`
}

// Request is one contact-form submission.
type Request struct {
	Name     string
	Email    string
	Comments string
}

// Service turns contact submissions into mail messages and hands them to the
// configured Sender.
type Service struct {
	cfg    Config
	sender mailer.Sender
	log    *slog.Logger
}

func NewService(cfg Config, sender mailer.Sender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{cfg: cfg, sender: sender, log: log.With(logger.Component("contact"))}
}

// Submit validates a submission and delivers it. Name and email are collapsed
// onto a single line before they reach the mail headers.
func (s *Service) Submit(ctx context.Context, req Request) error {
	req.Name = sanitizer.SingleLine(req.Name)
	req.Email = sanitizer.SingleLine(req.Email)
	req.Comments = sanitizer.Trim(req.Comments)

	if req.Name == "" || req.Email == "" || req.Comments == "" {
		return validator.ValidationErrors{{Field: "all", Message: "all fields are required"}}
	}
	if err := validator.Apply(validator.ValidEmail("email", req.Email)); err != nil {
		return err
	}

	msg := mailer.Message{
		From:    s.cfg.Recipient,
		To:      s.cfg.Recipient,
		ReplyTo: req.Email,
		Subject: s.cfg.Subject,
		Body:    fmt.Sprintf("Nombre: %s\nCorreo: %s\nComentarios:\n%s\n", req.Name, req.Email, req.Comments),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "contact mail delivery failed", logger.Error(err))
		return err
	}

	s.log.InfoContext(ctx, "contact mail delivered", slog.String("reply_to", req.Email))
	return nil
}
