package services

import (
	"context"

	"swiftride/internal/utils"
	"swiftride/internal/validators"
	"swiftride/pkg/logger"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
}

type newsletterAPI interface {
	SubscribeNewsletter(ctx context.Context, email string) error
}

type newsletterService struct {
	api    newsletterAPI
	logger *logger.Logger
}

func NewNewsletterService(api newsletterAPI, log *logger.Logger) NewsletterService {
	return &newsletterService{
		api:    api,
		logger: log,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	if !utils.IsValidEmail(email) {
		return validators.ValidationErrors{{
			Field:   "Email",
			Tag:     "email",
			Message: "Invalid email format",
		}}
	}

	if err := s.api.SubscribeNewsletter(ctx, email); err != nil {
		return err
	}
	s.logger.WithField("email", email).Info("Newsletter subscription recorded")
	return nil
}
