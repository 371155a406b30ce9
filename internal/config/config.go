package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the web frontend needs from the environment.
// Persistent state (products, orders, users) lives behind the backend
// API; this process only needs the API address, cookie settings and the
// optional SMTP/storage config.
type Config struct {
	Addr       string
	BaseURL    string // public base URL of this frontend (links in emails)
	APIBaseURL string // backend REST API, e.g. http://localhost:5000

	CookieSecret  []byte
	SecureCookies bool

	SessionCookieName string
	CartCookieName    string
	FlashCookieName   string
	SessionTTL        time.Duration

	APITimeout time.Duration

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

func Load() (Config, error) {
	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}

	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		return Config{}, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	cfg := Config{
		Addr:       envOr("ADDR", ":8080"),
		BaseURL:    envOr("BASE_URL", "http://localhost:8080"),
		APIBaseURL: apiBase,

		CookieSecret:  []byte(secret),
		SecureCookies: envBool("SECURE_COOKIES", false),

		SessionCookieName: envOr("SESSION_COOKIE", "merida_session"),
		CartCookieName:    envOr("CART_COOKIE", "merida_cart"),
		FlashCookieName:   envOr("FLASH_COOKIE", "merida_flash"),
		SessionTTL:        envDuration("SESSION_TTL", 7*24*time.Hour),

		APITimeout: envDuration("API_TIMEOUT", 10*time.Second),

		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "587"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@meridastore.com"),
			FromName:      envOr("SMTP_FROM_NAME", "Merida Store"),
			TLSMode:       envOr("SMTP_TLS_MODE", "starttls"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS", false),
		},
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
