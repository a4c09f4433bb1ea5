package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/viper"
)

// EmailService sends transactional email through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService returns a configured EmailService, or nil when no
// SENDGRID_API_KEY is set. A nil service is safe to pass around;
// callers skip sending.
func NewEmailService() *EmailService {
	apiKey := viper.GetString("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, email disabled")
		return nil
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: viper.GetString("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic HTML email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("Storefront", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user. Registration does
// not fail when the email cannot be delivered.
func (es *EmailService) SendWelcomeEmail(toEmail, firstName string) error {
	subject := "Welcome to Storefront"
	htmlContent := fmt.Sprintf(
		"<strong>Hi %s,</strong><br><br>Your account has been created successfully. Happy shopping!",
		firstName,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
