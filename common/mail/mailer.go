package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sunthewhat/quote-notify-api/type/shared"
)

// Address is an email address with an optional display name.
type Address struct {
	Email string
	Name  string
}

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
	// Base64 optionally carries Content already encoded, so a file shared by
	// several messages is encoded once. Transports fall back to Content.
	Base64 string
}

type Message struct {
	ID          string
	From        Address
	ReplyTo     Address
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer delivers one message and reports the status the delivery service
// answered with. A non-2xx status is not an error; err is reserved for
// failures where no status was obtained at all.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (status int, err error)
}

// NewMailer builds the transport selected by cfg.Transport.
func NewMailer(cfg shared.MailConfig) (Mailer, error) {
	switch cfg.Transport {
	case shared.TransportSendGrid, "":
		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridEndpoint, &http.Client{Timeout: cfg.Timeout}), nil
	case shared.TransportSMTP:
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass), nil
	}
	return nil, fmt.Errorf("unknown mail transport %q", cfg.Transport)
}
