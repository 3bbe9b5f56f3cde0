package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	SupabaseURL        string
	SupabaseServiceKey string
	Port               string
	Environment        string
	AllowedOrigins     []string

	MailTransport string // "mailgun" (default) or "smtp"
	MailgunAPIKey string
	MailgunDomain string
	MailgunRegion string // "us" (default) or "eu"
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	MailFrom      string
	MailDebugTo   string
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		Port:               getEnvOrDefault("PORT", "8080"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:     allowedOrigins,
		MailTransport:      getEnvOrDefault("MAIL_TRANSPORT", "mailgun"),
		MailgunAPIKey:      os.Getenv("MAILGUN_API_KEY"),
		MailgunDomain:      os.Getenv("MAILGUN_DOMAIN"),
		MailgunRegion:      getEnvOrDefault("MAILGUN_REGION", "us"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		MailFrom:           strings.TrimSpace(os.Getenv("MAIL_FROM")),
		MailDebugTo:        strings.TrimSpace(os.Getenv("MAIL_DEBUG_TO")),
	}
}

// FromAddress falls back to the Mailgun postmaster address when MAIL_FROM
// is not set, like the original deployment did.
func (c *Config) FromAddress() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return fmt.Sprintf("GSM Team <postmaster@%s>", c.MailgunDomain)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
