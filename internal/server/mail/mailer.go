// Package mail delivers account emails. Services never send directly: they
// hand messages to a Dispatcher, which delivers them in the background through
// one of the Mailer backends and only logs failures.
package mail

import (
	"context"
	"errors"
	"strings"
)

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers one message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Queue accepts messages for asynchronous delivery. Enqueue never blocks and
// never reports delivery failures to the caller.
type Queue interface {
	Enqueue(msg Message)
}

// Backend names.
const (
	BackendConsole = "console"
	BackendSMTP    = "smtp"
	BackendSES     = "ses"
)

var errHeaderInjection = errors.New("header value contains a line break")

func validate(msg Message) error {
	if msg.To == "" {
		return errors.New("empty recipient")
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return errHeaderInjection
	}
	return nil
}
