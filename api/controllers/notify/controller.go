package notify_controller

import (
	"time"

	"github.com/sunthewhat/quote-notify-api/common/mail"
	"github.com/sunthewhat/quote-notify-api/internal/renderer"
	"github.com/sunthewhat/quote-notify-api/type/payload"
	"github.com/sunthewhat/quote-notify-api/type/shared"
)

// QuoteRenderer turns a signed quote into a PDF attachment.
type QuoteRenderer interface {
	Render(p *payload.NotifyPayload) (*renderer.Artifact, error)
}

// NotifyController handles signed-quote notification requests
type NotifyController struct {
	cfg      *shared.Config
	mailer   mail.Mailer
	renderer QuoteRenderer
	location *time.Location
}

// NewNotifyController creates a new notify controller with injected
// dependencies. location is the zone the renderer was built with, so the PDF
// and the emails print the same signing time.
func NewNotifyController(cfg *shared.Config, location *time.Location, mailer mail.Mailer, quoteRenderer QuoteRenderer) *NotifyController {
	if location == nil {
		location = time.UTC
	}
	return &NotifyController{
		cfg:      cfg,
		mailer:   mailer,
		renderer: quoteRenderer,
		location: location,
	}
}
