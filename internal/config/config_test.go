package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SecureInferredFromPort465(t *testing.T) {
	t.Setenv("SMTP_PORT", "465")

	cfg, err := New()

	require.NoError(t, err)
	assert.True(t, cfg.SMTP.Secure)
}

func TestNew_SecureOverride(t *testing.T) {
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURE", "false")

	cfg, err := New()

	require.NoError(t, err)
	assert.False(t, cfg.SMTP.Secure)
}

func TestNew_MissingCredentialsStillLoads(t *testing.T) {
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASSWORD", "")

	cfg, err := New()

	require.NoError(t, err)
	assert.False(t, cfg.SMTP.Configured())
}

func TestNew_FromDefaultsToUsername(t *testing.T) {
	t.Setenv("SMTP_USER", "mailer@glitzfusion.in")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_FROM", "")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "mailer@glitzfusion.in", cfg.SMTP.From)
	assert.True(t, cfg.SMTP.Configured())
}

func TestNew_InvalidServerPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := New()

	assert.Error(t, err)
}
