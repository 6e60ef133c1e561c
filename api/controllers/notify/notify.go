package notify_controller

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sunthewhat/quote-notify-api/common/mail"
	"github.com/sunthewhat/quote-notify-api/common/util"
	"github.com/sunthewhat/quote-notify-api/internal/mailtemplate"
	"github.com/sunthewhat/quote-notify-api/type/payload"
	"github.com/sunthewhat/quote-notify-api/type/response"
)

const DeliveryStateHeader = "X-Delivery-State"

type recipient struct {
	audience mailtemplate.Audience
	to       string
}

// Notify renders the signed quote once and emails it to the internal
// recipient, then to the customer when a contact email was given.
func (ctrl *NotifyController) Notify(c *fiber.Ctx) error {
	if !ctrl.cfg.Mail.Configured() {
		slog.Error("Notify rejected, mail transport not configured", "transport", ctrl.cfg.Mail.Transport)
		return response.SendError(c, "SendGrid not configured")
	}

	body := new(payload.NotifyPayload)
	if err := c.BodyParser(body); err != nil {
		slog.Error("Notify failed to parse body", "error", err)
		return response.SendError(c, err.Error())
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	artifact, err := ctrl.renderer.Render(body)
	if err != nil {
		slog.Error("Notify failed to render quote", "quote_number", body.QuoteNumber, "error", err)
		return response.SendInternalError(c, err)
	}

	data := mailtemplate.Data{
		Quote:  body,
		Signed: util.FormatSignedAt(body.SignedAt, ctrl.location),
	}

	recipients := []recipient{{audience: mailtemplate.Internal, to: ctrl.cfg.NotifyEmail}}
	if body.ContactEmail != "" {
		recipients = append(recipients, recipient{audience: mailtemplate.Customer, to: body.ContactEmail})
	}

	attachment := mail.Attachment{
		Filename:    artifact.Filename,
		ContentType: "application/pdf",
		Content:     artifact.PDF,
		Base64:      artifact.Base64(),
	}

	results := make([]response.DispatchResult, 0, len(recipients))
	for _, r := range recipients {
		msg := ctrl.message(r, data, attachment)

		status, err := ctrl.mailer.Send(c.UserContext(), msg)
		if err != nil {
			slog.Error("Notify failed to send email",
				"quote_number", body.QuoteNumber,
				"audience", r.audience.String(),
				"notification_id", msg.ID,
				"error", err)
			return response.SendInternalError(c, fmt.Errorf("failed to send %s email: %w", r.audience, err))
		}

		slog.Info("Notification sent",
			"quote_number", body.QuoteNumber,
			"audience", r.audience.String(),
			"notification_id", msg.ID,
			"status", status)
		results = append(results, response.DispatchResult{To: r.to, Status: status})
	}

	state := "delivered"
	if !response.Delivered(results) {
		state = "partial"
	}
	c.Set(DeliveryStateHeader, state)

	return response.SendNotified(c, results)
}

func (ctrl *NotifyController) message(r recipient, data mailtemplate.Data, attachment mail.Attachment) *mail.Message {
	mailCfg := ctrl.cfg.Mail
	return &mail.Message{
		ID:      uuid.NewString(),
		From:    mail.Address{Email: mailCfg.FromEmail, Name: mailCfg.FromName},
		ReplyTo: mail.Address{Email: mailCfg.ReplyToEmail, Name: mailCfg.ReplyToName},
		To:      r.to,
		Subject: mailtemplate.Subject(r.audience, data.Quote.QuoteNumber, data.Quote.Company),
		HTML:    mailtemplate.Build(r.audience, data),
		Attachments: []mail.Attachment{attachment},
	}
}

// Preflight answers a bare OPTIONS with an empty 200. Browser pre-flights
// carrying Access-Control-Request-Method are answered by the cors middleware.
func (ctrl *NotifyController) Preflight(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).Send(nil)
}

func (ctrl *NotifyController) MethodNotAllowed(c *fiber.Ctx) error {
	return response.SendMethodNotAllowed(c)
}
