package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"campus-lostfound/internal/config"
)

// EmailService is the outbound send channel. It is treated as unreliable:
// callers decide whether a failure is recoverable.
type EmailService interface {
	Send(ctx context.Context, toEmail, subject, htmlBody string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Campus Lost & Found <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    htmlBody,
		Subject: subject,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}
