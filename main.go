package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sunthewhat/quote-notify-api/api"
	notify_controller "github.com/sunthewhat/quote-notify-api/api/controllers/notify"
	"github.com/sunthewhat/quote-notify-api/common/config"
	"github.com/sunthewhat/quote-notify-api/common/logger"
	"github.com/sunthewhat/quote-notify-api/common/mail"
	"github.com/sunthewhat/quote-notify-api/internal/renderer"
	"github.com/sunthewhat/quote-notify-api/type/payload"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to the YAML configuration file")
	renderPath := flag.String("render", "", "Render the quote in this JSON payload file to a PDF and exit")
	outPath := flag.String("out", "", "Output path for -render (defaults to the attachment filename)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.InitLogger(cfg.Log)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("Failed to load timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	signer, err := renderer.NewCertificateSigner(cfg.Signing)
	if err != nil {
		slog.Error("Failed to initialize PDF signer", "error", err)
		os.Exit(1)
	}
	slog.Info("PDF signing configured", "enabled", signer.IsEnabled(), "timezone", location.String())

	quoteRenderer := renderer.NewQuoteRenderer(renderer.Options{
		Location:  location,
		VerifyURL: cfg.VerifyURL,
		Signer:    signer,
	})

	if *renderPath != "" {
		if err := renderFile(quoteRenderer, *renderPath, *outPath); err != nil {
			slog.Error("Failed to render quote", "path", *renderPath, "error", err)
			os.Exit(1)
		}
		return
	}

	mailer, err := mail.NewMailer(cfg.Mail)
	if err != nil {
		slog.Error("Failed to initialize mailer", "error", err)
		os.Exit(1)
	}
	if !cfg.Mail.Configured() {
		slog.Warn("Mail transport not configured, notify requests will be rejected", "transport", cfg.Mail.Transport)
	}

	app := api.NewApp(notify_controller.NewNotifyController(cfg, location, mailer, quoteRenderer))
	if err := api.InitFiber(app, cfg.Port); err != nil {
		os.Exit(1)
	}
}

// renderFile writes the PDF for a payload file without sending any email.
func renderFile(quoteRenderer *renderer.QuoteRenderer, path, out string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	body := new(payload.NotifyPayload)
	if err := json.Unmarshal(raw, body); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	artifact, err := quoteRenderer.Render(body)
	if err != nil {
		return err
	}

	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.PDF, 0o644); err != nil {
		return err
	}

	slog.Info("Quote rendered", "output", out, "pages", artifact.Pages, "size", len(artifact.PDF))
	return nil
}
