package mail

import (
	"context"
	"fmt"
	"io"
)

// Config selects and configures a Mailer backend.
type Config struct {
	Backend string
	From    string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	SES SESConfig

	// Console is where the console backend writes; nil means stdout.
	Console io.Writer
}

// New builds the Mailer named by c.Backend.
func New(ctx context.Context, c Config) (Mailer, error) {
	switch c.Backend {
	case "", BackendConsole:
		return NewConsoleMailer(c.Console), nil
	case BackendSMTP:
		if c.SMTPHost == "" {
			return nil, fmt.Errorf("smtp backend requires a host")
		}
		return NewSMTPMailer(c.SMTPHost, c.SMTPPort, c.SMTPUser, c.SMTPPassword, c.From), nil
	case BackendSES:
		ses := c.SES
		if ses.From == "" {
			ses.From = c.From
		}
		return NewSESMailer(ctx, ses)
	default:
		return nil, fmt.Errorf("unknown mail backend %q", c.Backend)
	}
}
