package email

import (
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendSyncFailureAlert notifies an operator that a scheduled call log sync
// run failed, including the window it covered and the partial counts.
func (s *Service) SendSyncFailureAlert(toEmail, toName, startDate, endDate string, inserted, updated, skipped int, runErr error) error {
	subject := fmt.Sprintf("Call log sync failed (%s – %s)", startDate, endDate)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Call Log Sync Failure</h2>
			<p>The scheduled call log sync run for <strong>%s – %s</strong> failed.</p>
			<p><strong>Error:</strong> %v</p>
			<h3>Partial results before failure:</h3>
			<ul>
				<li>Inserted: %d</li>
				<li>Updated: %d</li>
				<li>Skipped: %d</li>
			</ul>
			<p>Records already merged are kept; the next run will pick up the remainder.</p>
			<p>Reported at %s.</p>
		</body>
		</html>
	`, startDate, endDate, runErr, inserted, updated, skipped, time.Now().Format(time.RFC3339))

	plainText := fmt.Sprintf(`
The scheduled call log sync run for %s – %s failed.

Error: %v

Partial results before failure:
- Inserted: %d
- Updated: %d
- Skipped: %d

Records already merged are kept; the next run will pick up the remainder.
	`, startDate, endDate, runErr, inserted, updated, skipped)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   Error: %v", runErr)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}
