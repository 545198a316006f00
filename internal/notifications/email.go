package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"
)

type EmailSender interface {
	SendNotification(ctx context.Context, notification *Notification) error
}

const bookingConfirmationTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Your booking is confirmed</h2>
  <p>Hi {{.RecipientName}},</p>
  <p>Thanks for booking with us. Here are your ticket details:</p>
  <table cellpadding="6">
    <tr><td><b>Ticket</b></td><td>{{.Booking.TicketNumber}}</td></tr>
    <tr><td><b>Movie</b></td><td>{{.Booking.ShowTitle}}</td></tr>
    <tr><td><b>Showtime</b></td><td>{{.Booking.Showtime.Format "Mon, 02 Jan 2006 15:04"}}</td></tr>
    <tr><td><b>Seats</b></td><td>{{.SeatList}}</td></tr>
  </table>
  <p>Show this ticket number at the entrance. Enjoy the movie!</p>
</body>
</html>`

type smtpSender struct {
	config   config.SMTPConfig
	template *template.Template
}

// NewSMTPSender builds the SMTP-backed sender. When the SMTP host is
// not configured it returns a sender that only logs, so the consumer
// pipeline works in development without a mail server.
func NewSMTPSender(cfg *config.Config) EmailSender {
	if cfg.SMTP.Host == "" {
		logger.GetDefault().Warn("SMTP not configured, notification emails will be logged only")
		return &logSender{}
	}

	tmpl := template.Must(template.New("booking_confirmation").Parse(bookingConfirmationTemplate))
	return &smtpSender{
		config:   cfg.SMTP,
		template: tmpl,
	}
}

func (s *smtpSender) SendNotification(ctx context.Context, notification *Notification) error {
	body, err := s.renderBody(notification)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Booking confirmed: %s", notification.Booking.ShowTitle)
	message := s.buildMessage(notification.RecipientEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	return smtp.SendMail(addr, auth, s.config.FromEmail, []string{notification.RecipientEmail}, message)
}

func (s *smtpSender) renderBody(notification *Notification) (string, error) {
	seatList := make([]string, 0, len(notification.Booking.SeatNumbers))
	for _, n := range notification.Booking.SeatNumbers {
		seatList = append(seatList, fmt.Sprintf("%d", n))
	}

	data := struct {
		*Notification
		SeatList string
	}{
		Notification: notification,
		SeatList:     strings.Join(seatList, ", "),
	}

	var buf bytes.Buffer
	if err := s.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

func (s *smtpSender) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// logSender stands in for SMTP in development
type logSender struct{}

func (l *logSender) SendNotification(ctx context.Context, notification *Notification) error {
	logger.GetDefault().Info("email notification (not sent, SMTP disabled)",
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
		"ticket_number", notification.Booking.TicketNumber,
	)
	return nil
}
