package mail

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleMailer prints messages instead of sending them. It is the default
// backend for local development.
type ConsoleMailer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleMailer(w io.Writer) *ConsoleMailer {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleMailer{w: w}
}

func (c *ConsoleMailer) Send(_ context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.w, "=== EMAIL ===\nTo: %s\nSubject: %s\n\n%s\n=============\n", msg.To, msg.Subject, msg.Body)
	return err
}
