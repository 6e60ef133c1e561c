package shared

import "time"

const (
	TransportSendGrid = "sendgrid"
	TransportSMTP     = "smtp"
)

type Config struct {
	Port        string        `yaml:"port" validate:"required"`
	NotifyEmail string        `yaml:"notify_email" validate:"required,email"`
	Timezone    string        `yaml:"timezone" validate:"required,timezone"`
	VerifyURL   string        `yaml:"verify_url" validate:"omitempty,url"`
	Mail        MailConfig    `yaml:"mail"`
	Signing     SigningConfig `yaml:"signing"`
	Log         LogConfig     `yaml:"log"`
}

type MailConfig struct {
	Transport        string        `yaml:"transport" validate:"oneof=sendgrid smtp"`
	SendGridAPIKey   string        `yaml:"sendgrid_api_key"`
	SendGridEndpoint string        `yaml:"sendgrid_endpoint" validate:"required,url"`
	Timeout          time.Duration `yaml:"timeout" validate:"gt=0"`
	FromEmail        string        `yaml:"from_email" validate:"required,email"`
	FromName         string        `yaml:"from_name" validate:"required"`
	ReplyToEmail     string        `yaml:"reply_to_email" validate:"required,email"`
	ReplyToName      string        `yaml:"reply_to_name" validate:"required"`
	SMTPHost         string        `yaml:"smtp_host"`
	SMTPPort         int           `yaml:"smtp_port" validate:"omitempty,min=1,max=65535"`
	SMTPUser         string        `yaml:"smtp_user"`
	SMTPPass         string        `yaml:"smtp_pass"`
}

// Configured reports whether the selected transport has the credentials it
// needs to deliver anything.
func (m MailConfig) Configured() bool {
	switch m.Transport {
	case TransportSMTP:
		return m.SMTPHost != ""
	default:
		return m.SendGridAPIKey != ""
	}
}

type SigningConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertPath string `yaml:"cert_path" validate:"required_if=Enabled true"`
	KeyPath  string `yaml:"key_path" validate:"required_if=Enabled true"`
}

type LogConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}
