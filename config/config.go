package config

import (
	"log"
	"os"
	"strconv"
)

const defaultMailPort = 587

// Config is populated once at startup and treated as read-only afterwards.
type Config struct {
	SecretKey   string
	FrontendURL string
	Currency    string

	StripeKey string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
}

func Load() *Config {
	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", strconv.Itoa(defaultMailPort)))
	if err != nil {
		log.Printf("Invalid MAIL_PORT %q, using %d", os.Getenv("MAIL_PORT"), defaultMailPort)
		mailPort = defaultMailPort
	}
	return &Config{
		SecretKey:   os.Getenv("SECRET_KEY"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:7777"),
		Currency:    getEnv("CURRENCY", "gbp"),
		StripeKey:   os.Getenv("STRIPE_SECRET_KEY"),
		MailHost:    os.Getenv("MAIL_HOST"),
		MailPort:    mailPort,
		MailUser:    os.Getenv("MAIL_USER"),
		MailPass:    os.Getenv("MAIL_PASS"),
		MailFrom:    getEnv("MAIL_FROM", "noreply@storefront.local"),
	}
}

// getEnv retrieves an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
