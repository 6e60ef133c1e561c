package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const DefaultSendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

type SendGridMailer struct {
	client    *sendgrid.Client
	transport *rest.Client
}

// NewSendGridMailer points the v3 send client at endpoint. The shared
// sendgrid.Client request is only ever copied, so one mailer may be used by
// concurrent requests.
func NewSendGridMailer(apiKey, endpoint string, client *http.Client) *SendGridMailer {
	sg := sendgrid.NewSendClient(apiKey)
	if endpoint != "" {
		sg.BaseURL = endpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	return &SendGridMailer{client: sg, transport: &rest.Client{HTTPClient: client}}
}

func buildSendGridMail(msg *Message) *sgmail.SGMailV3 {
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail(msg.From.Name, msg.From.Email))
	m.SetReplyTo(sgmail.NewEmail(msg.ReplyTo.Name, msg.ReplyTo.Email))

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", msg.To))
	p.Subject = msg.Subject
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", msg.HTML))

	for _, a := range msg.Attachments {
		encoded := a.Base64
		if encoded == "" {
			encoded = base64.StdEncoding.EncodeToString(a.Content)
		}
		m.AddAttachment(sgmail.NewAttachment().
			SetContent(encoded).
			SetType(a.ContentType).
			SetFilename(a.Filename).
			SetDisposition("attachment"))
	}
	if msg.ID != "" {
		m.SetCustomArg("notification_id", msg.ID)
	}
	return m
}

func (m *SendGridMailer) Send(ctx context.Context, msg *Message) (int, error) {
	request := m.client.Request
	request.Body = sgmail.GetRequestBody(buildSendGridMail(msg))

	resp, err := m.transport.SendWithContext(ctx, request)
	if err != nil {
		return 0, fmt.Errorf("sendgrid request failed: %w", err)
	}

	if resp.StatusCode >= 300 {
		// SendGrid explains rejections in the body; keep it for the logs only.
		slog.Warn("SendGrid rejected message", "recipient", msg.To, "status", resp.StatusCode, "body", resp.Body, "notification_id", msg.ID)
	}

	return resp.StatusCode, nil
}
