package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	args := m.Called(ctx, toEmail, subject, htmlBody)
	return args.Error(0)
}
