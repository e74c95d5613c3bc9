package authservice

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer stands in for the transactional email provider in environments
// without one configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendOTP(_ context.Context, email, code string) error {
	zap.L().Info("otp code (log mailer)", zap.String("email", email), zap.String("code", code))
	return nil
}
