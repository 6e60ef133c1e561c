package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/textproto"

	"gopkg.in/gomail.v2"
)

// SMTPMailer relays messages through an SMTP server. Accepted messages are
// reported as 202; a rejection reports the server's reply code.
type SMTPMailer struct {
	dial func() (gomail.SendCloser, error)
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	dialer := gomail.NewDialer(host, port, username, password)
	return &SMTPMailer{dial: dialer.Dial}
}

func buildSMTPMessage(msg *Message) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", msg.From.Email, msg.From.Name)
	if msg.ReplyTo.Email != "" {
		mailer.SetAddressHeader("Reply-To", msg.ReplyTo.Email, msg.ReplyTo.Name)
	}
	mailer.SetHeader("To", msg.To)
	mailer.SetHeader("Subject", msg.Subject)
	if msg.ID != "" {
		mailer.SetHeader("X-Notification-Id", msg.ID)
	}
	mailer.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		content := a.Content
		mailer.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(content))
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}),
		)
	}
	return mailer
}

func (m *SMTPMailer) Send(ctx context.Context, msg *Message) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	sender, dialErr := m.dial()
	if dialErr != nil {
		return 0, fmt.Errorf("failed to dial smtp server: %w", dialErr)
	}
	defer sender.Close()

	sendErr := sender.Send(msg.From.Email, []string{msg.To}, buildSMTPMessage(msg))
	if sendErr != nil {
		var reply *textproto.Error
		if errors.As(sendErr, &reply) {
			slog.Warn("SMTP server rejected message", "recipient", msg.To, "code", reply.Code, "error", reply.Msg, "notification_id", msg.ID)
			return reply.Code, nil
		}
		return 0, fmt.Errorf("smtp send failed: %w", sendErr)
	}

	return http.StatusAccepted, nil
}
