package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with optional fields; only variables that are
// actually set override earlier layers.
type envConfig struct {
	GRPCAddr           *string        `env:"GRPC_ADDR"`
	HTTPAddr           *string        `env:"HTTP_ADDR"`
	DatabaseDSN        *string        `env:"DATABASE_DSN"`
	SecretKey          *string        `env:"SECRET_KEY"`
	TokenTTL           *time.Duration `env:"TOKEN_TTL"`
	ResetTokenTTL      *time.Duration `env:"RESET_TOKEN_TTL"`
	PasswordHashCost   *int           `env:"PASSWORD_HASH_COST"`
	HashConcurrency    *int           `env:"HASH_CONCURRENCY"`
	ResetURL           *string        `env:"RESET_URL"`
	MailBackend        *string        `env:"MAIL_BACKEND"`
	MailFrom           *string        `env:"MAIL_FROM"`
	MailWorkers        *int           `env:"MAIL_WORKERS"`
	MailQueueSize      *int           `env:"MAIL_QUEUE_SIZE"`
	SMTPHost           *string        `env:"SMTP_HOST"`
	SMTPPort           *int           `env:"SMTP_PORT"`
	SMTPUser           *string        `env:"SMTP_USER"`
	SMTPPassword       *string        `env:"SMTP_PASSWORD"`
	SESRegion          *string        `env:"SES_REGION"`
	SESAccessKeyID     *string        `env:"SES_ACCESS_KEY_ID"`
	SESSecretAccessKey *string        `env:"SES_SECRET_ACCESS_KEY"`
	GoogleClientID     *string        `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret *string        `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  *string        `env:"GOOGLE_REDIRECT_URL"`
	GitHubClientID     *string        `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret *string        `env:"GITHUB_CLIENT_SECRET"`
	GitHubRedirectURL  *string        `env:"GITHUB_REDIRECT_URL"`
	SecureCookies      *bool          `env:"SECURE_COOKIES"`
	LogBackend         *string        `env:"LOG_BACKEND"`
	LogLevel           *string        `env:"LOG_LEVEL"`
}

// EnvPrefix prefixes every variable name read by parseEnv.
const EnvPrefix = "AUTHKEEPER_"

func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func parseEnv(config *Config, opts env.Options) error {
	opts.Prefix = EnvPrefix

	var e envConfig
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return err
	}

	override(&config.GRPCAddr, e.GRPCAddr)
	override(&config.HTTPAddr, e.HTTPAddr)
	override(&config.DatabaseDSN, e.DatabaseDSN)
	override(&config.SecretKey, e.SecretKey)
	override(&config.TokenTTL, e.TokenTTL)
	override(&config.ResetTokenTTL, e.ResetTokenTTL)
	override(&config.PasswordHashCost, e.PasswordHashCost)
	override(&config.HashConcurrency, e.HashConcurrency)
	override(&config.ResetURL, e.ResetURL)
	override(&config.MailBackend, e.MailBackend)
	override(&config.MailFrom, e.MailFrom)
	override(&config.MailWorkers, e.MailWorkers)
	override(&config.MailQueueSize, e.MailQueueSize)
	override(&config.SMTPHost, e.SMTPHost)
	override(&config.SMTPPort, e.SMTPPort)
	override(&config.SMTPUser, e.SMTPUser)
	override(&config.SMTPPassword, e.SMTPPassword)
	override(&config.SESRegion, e.SESRegion)
	override(&config.SESAccessKeyID, e.SESAccessKeyID)
	override(&config.SESSecretAccessKey, e.SESSecretAccessKey)
	override(&config.GoogleClientID, e.GoogleClientID)
	override(&config.GoogleClientSecret, e.GoogleClientSecret)
	override(&config.GoogleRedirectURL, e.GoogleRedirectURL)
	override(&config.GitHubClientID, e.GitHubClientID)
	override(&config.GitHubClientSecret, e.GitHubClientSecret)
	override(&config.GitHubRedirectURL, e.GitHubRedirectURL)
	override(&config.SecureCookies, e.SecureCookies)
	override(&config.LogBackend, e.LogBackend)
	override(&config.LogLevel, e.LogLevel)
	return nil
}
