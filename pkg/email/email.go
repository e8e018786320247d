// Package email sends transactional mail through SendGrid. Sending is best
// effort everywhere it is used: a failed email logs a warning and never fails
// the request that triggered it.
package email

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"tiendia.app/api/pkg/global"
)

func senderAddress() *mail.Email {
	return mail.NewEmail("tiendia", global.GetEnvOrDefault("EMAIL_SENDER", "hola@tiendia.app"))
}

// SendEmail sends a basic HTML email to the specified recipient.
func SendEmail(toName, toEmail, subject, htmlContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	message := mail.NewSingleEmail(senderAddress(), subject, mail.NewEmail(toName, toEmail), htmlContent, htmlContent)
	client := sendgrid.NewSendClient(apiKey)

	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}

	log.Printf("Email sent to %s (%s)", toEmail, subject)
	return nil
}

// SendWelcomeEmail greets a newly registered store owner with their public
// storefront link.
func SendWelcomeEmail(storeName, toEmail, username string) error {
	subject := "Bienvenido a tiendia"
	htmlContent := fmt.Sprintf(
		"<strong>Hola %s!</strong><br><br>Tu tienda ya está lista. Compartí tu página con tus clientes:<br><a href=\"https://tiendia.app/%s\">tiendia.app/%s</a>",
		storeName, username, username,
	)
	return SendEmail(storeName, toEmail, subject, htmlContent)
}
