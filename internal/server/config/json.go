package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept "15m"
// style strings or integer nanoseconds. Absent keys keep the previous value.
type JsonConfig struct {
	GRPCAddr           string         `json:"grpc_addr"`
	HTTPAddr           string         `json:"http_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	SecretKey          string         `json:"secret_key"`
	TokenTTL           timex.Duration `json:"token_ttl"`
	ResetTokenTTL      timex.Duration `json:"reset_token_ttl"`
	PasswordHashCost   int            `json:"password_hash_cost"`
	HashConcurrency    int            `json:"hash_concurrency"`
	ResetURL           string         `json:"reset_url"`
	MailBackend        string         `json:"mail_backend"`
	MailFrom           string         `json:"mail_from"`
	MailWorkers        int            `json:"mail_workers"`
	MailQueueSize      int            `json:"mail_queue_size"`
	SMTPHost           string         `json:"smtp_host"`
	SMTPPort           int            `json:"smtp_port"`
	SMTPUser           string         `json:"smtp_user"`
	SMTPPassword       string         `json:"smtp_password"`
	SESRegion          string         `json:"ses_region"`
	SESAccessKeyID     string         `json:"ses_access_key_id"`
	SESSecretAccessKey string         `json:"ses_secret_access_key"`
	GoogleClientID     string         `json:"google_client_id"`
	GoogleClientSecret string         `json:"google_client_secret"`
	GoogleRedirectURL  string         `json:"google_redirect_url"`
	GitHubClientID     string         `json:"github_client_id"`
	GitHubClientSecret string         `json:"github_client_secret"`
	GitHubRedirectURL  string         `json:"github_redirect_url"`
	SecureCookies      *bool          `json:"secure_cookies"`
	LogBackend         string         `json:"log_backend"`
	LogLevel           string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// parseJSON overlays the file named by -c/-config, if any.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(b, c); err != nil {
		return err
	}

	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.ResetTokenTTL.Duration != 0 {
		config.ResetTokenTTL = c.ResetTokenTTL.Duration
	}
	setInt(&config.PasswordHashCost, c.PasswordHashCost)
	setInt(&config.HashConcurrency, c.HashConcurrency)
	setString(&config.ResetURL, c.ResetURL)
	setString(&config.MailBackend, c.MailBackend)
	setString(&config.MailFrom, c.MailFrom)
	setInt(&config.MailWorkers, c.MailWorkers)
	setInt(&config.MailQueueSize, c.MailQueueSize)
	setString(&config.SMTPHost, c.SMTPHost)
	setInt(&config.SMTPPort, c.SMTPPort)
	setString(&config.SMTPUser, c.SMTPUser)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.SESRegion, c.SESRegion)
	setString(&config.SESAccessKeyID, c.SESAccessKeyID)
	setString(&config.SESSecretAccessKey, c.SESSecretAccessKey)
	setString(&config.GoogleClientID, c.GoogleClientID)
	setString(&config.GoogleClientSecret, c.GoogleClientSecret)
	setString(&config.GoogleRedirectURL, c.GoogleRedirectURL)
	setString(&config.GitHubClientID, c.GitHubClientID)
	setString(&config.GitHubClientSecret, c.GitHubClientSecret)
	setString(&config.GitHubRedirectURL, c.GitHubRedirectURL)
	if c.SecureCookies != nil {
		config.SecureCookies = *c.SecureCookies
	}
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	return nil
}
