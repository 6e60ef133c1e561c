package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/sunthewhat/quote-notify-api/common/util"
	"github.com/sunthewhat/quote-notify-api/type/shared"
	"gopkg.in/yaml.v3"
)

const DefaultNotifyEmail = "kwhite@vx360net.com"

func Defaults() *shared.Config {
	return &shared.Config{
		Port:        ":8000",
		NotifyEmail: DefaultNotifyEmail,
		Timezone:    "UTC",
		Mail: shared.MailConfig{
			Transport:        shared.TransportSendGrid,
			SendGridEndpoint: "https://api.sendgrid.com/v3/mail/send",
			Timeout:          30 * time.Second,
			FromEmail:        "kwhite@vx360net.com",
			FromName:         "VX-360 Networks",
			ReplyToEmail:     "kwhite@vx360net.com",
			ReplyToName:      "Kenneth White",
			SMTPPort:         587,
		},
		Log: shared.LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadConfig reads path (a missing file is fine), applies environment
// overrides and validates the result.
func LoadConfig(path string) (*shared.Config, error) {
	config := Defaults()

	yml, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", path, unmarshalErr)
		}
	case errors.Is(readErr, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
	}

	if envErr := applyEnv(config); envErr != nil {
		return nil, envErr
	}

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %s", util.GetValidationErrors(validateErr)[0])
	}

	return config, nil
}

func applyEnv(config *shared.Config) error {
	setString(&config.Port, "PORT")
	setString(&config.NotifyEmail, "NOTIFY_EMAIL")
	setString(&config.Timezone, "TIMEZONE")
	setString(&config.VerifyURL, "VERIFY_URL")
	setString(&config.Mail.Transport, "MAIL_TRANSPORT")
	setString(&config.Mail.SendGridAPIKey, "SENDGRID_API_KEY")
	setString(&config.Mail.SMTPHost, "SMTP_HOST")
	setString(&config.Mail.SMTPUser, "SMTP_USER")
	setString(&config.Mail.SMTPPass, "SMTP_PASS")
	setString(&config.Log.File, "LOG_FILE")
	setString(&config.Log.Level, "LOG_LEVEL")

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		config.Mail.SMTPPort = port
	}

	// Bare port numbers are accepted for PaaS-style PORT variables.
	if _, err := strconv.Atoi(config.Port); err == nil {
		config.Port = ":" + config.Port
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
