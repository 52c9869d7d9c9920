package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	SMTP   SMTPConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// SMTPConfig carries the mail transport settings. Username and
// Password may legitimately be empty: send operations then report a
// structured "SMTP not configured" failure instead of erroring out at
// startup.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	serverCfg := ServerConfig{
		Host: serverHost,
		Port: serverPort,
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	smtpPortStr := os.Getenv("SMTP_PORT")
	if smtpPortStr == "" {
		smtpPortStr = "587"
	}

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SMTP_PORT: %w", op, err)
	}

	// SMTP_SECURE overrides; otherwise implicit TLS is inferred from
	// the standard SMTPS port.
	secure := smtpPort == 465
	if secureStr := os.Getenv("SMTP_SECURE"); secureStr != "" {
		secure, err = strconv.ParseBool(secureStr)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid SMTP_SECURE: %w", op, err)
		}
	}

	smtpUser := os.Getenv("SMTP_USER")
	smtpPassword := os.Getenv("SMTP_PASSWORD")

	smtpFrom := os.Getenv("SMTP_FROM")
	if smtpFrom == "" {
		smtpFrom = smtpUser
	}

	smtpCfg := SMTPConfig{
		Host:     smtpHost,
		Port:     smtpPort,
		Secure:   secure,
		Username: smtpUser,
		Password: smtpPassword,
		From:     smtpFrom,
	}

	return &Config{
		Server: serverCfg,
		SMTP:   smtpCfg,
	}, nil
}
