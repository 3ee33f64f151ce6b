package utils

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/config"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends housekeeping notifications over SMTP.
type Mailer struct {
	sender    mailSender
	from      string
	to        string
	hotelName string
}

// NewMailer returns nil when SMTP or the housekeeping address is not configured.
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SMTP.Host == "" || cfg.SMTP.HousekeepingEmail == "" {
		return nil
	}
	d := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.User
	}
	return &Mailer{
		sender:    d,
		from:      from,
		to:        cfg.SMTP.HousekeepingEmail,
		hotelName: cfg.Server.HotelName,
	}
}

func (m *Mailer) CleaningRequested(ctx context.Context, task entities.CleaningTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("[%s] Cleaning requested for room %s", m.hotelName, task.RoomID))

	htmlBody := fmt.Sprintf(`
    <h1>Cleaning Request</h1>
    <p>Room <strong>%s</strong> was requested for cleaning on %s.</p>
    <p>Task reference: %s</p>
    `, task.RoomID, task.RequestedAt, task.TaskID)
	msg.SetBody("text/html", htmlBody)

	return m.sender.DialAndSend(msg)
}
