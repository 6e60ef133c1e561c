package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/quote-notify-api/type/shared"
)

// clearEnv blanks every variable applyEnv reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "NOTIFY_EMAIL", "TIMEZONE", "VERIFY_URL", "MAIL_TRANSPORT",
		"SENDGRID_API_KEY", "SMTP_HOST", "SMTP_USER", "SMTP_PASS", "SMTP_PORT",
		"LOG_FILE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Port)
	assert.Equal(t, DefaultNotifyEmail, cfg.NotifyEmail)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, shared.TransportSendGrid, cfg.Mail.Transport)
	assert.Equal(t, 30*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "Kenneth White", cfg.Mail.ReplyToName)
	assert.False(t, cfg.Mail.Configured())
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: ":9000"
notify_email: sales@vx360net.com
timezone: America/New_York
verify_url: https://quotes.example.com/verify
mail:
  transport: smtp
  smtp_host: smtp.example.com
  smtp_port: 2525
  timeout: 5s
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "sales@vx360net.com", cfg.NotifyEmail)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, "https://quotes.example.com/verify", cfg.VerifyURL)
	assert.Equal(t, shared.TransportSMTP, cfg.Mail.Transport)
	assert.Equal(t, 2525, cfg.Mail.SMTPPort)
	assert.Equal(t, 5*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, "VX-360 Networks", cfg.Mail.FromName)
	assert.True(t, cfg.Mail.Configured())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "notify_email: file@vx360net.com\n")
	t.Setenv("NOTIFY_EMAIL", "env@vx360net.com")
	t.Setenv("SENDGRID_API_KEY", "SG.key")
	t.Setenv("PORT", "3000")
	t.Setenv("SMTP_PORT", "465")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env@vx360net.com", cfg.NotifyEmail)
	assert.Equal(t, "SG.key", cfg.Mail.SendGridAPIKey)
	assert.Equal(t, ":3000", cfg.Port)
	assert.Equal(t, 465, cfg.Mail.SMTPPort)
	assert.True(t, cfg.Mail.Configured())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad yaml", yaml: "port: [", wantErr: "failed to unmarshal"},
		{name: "bad notify email", yaml: "notify_email: nope\n", wantErr: "notify_email must be a valid email"},
		{name: "bad timezone", yaml: "timezone: Mars/Olympus\n", wantErr: "timezone must be a valid IANA timezone"},
		{name: "unknown transport", yaml: "mail:\n  transport: pigeon\n", wantErr: "transport must be one of: sendgrid smtp"},
		{name: "signing without paths", yaml: "signing:\n  enabled: true\n", wantErr: "cert_path is required"},
		{name: "bad smtp port env", env: map[string]string{"SMTP_PORT": "abc"}, wantErr: "invalid SMTP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
