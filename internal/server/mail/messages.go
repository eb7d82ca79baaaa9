package mail

import (
	"fmt"
	"net/url"
	"time"
)

// WelcomeMessage greets a freshly registered account.
func WelcomeMessage(to, username string) Message {
	return Message{
		To:      to,
		Subject: "Welcome to AuthKeeper",
		Body: fmt.Sprintf("Hello %s!\n\n"+
			"Thank you for joining. Your account has been created and you can sign in now.\n\n"+
			"If you have any questions, just reply to this email.\n", username),
	}
}

// ResetLink appends the reset token to base as query parameters.
func ResetLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("reset", "true")
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ResetMessage carries the password reset link valid for ttl.
func ResetMessage(to, link string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Password Reset Request",
		Body: "We received a request to reset your password. Open the link below to proceed:\n\n" +
			link + "\n\n" +
			"This link will expire in " + humanize(ttl) + ".\n" +
			"If you didn't request this, please ignore this email.\n",
	}
}

func humanize(d time.Duration) string {
	plural := func(n int64, unit string) string {
		if n == 1 {
			return "1 " + unit
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	if d >= time.Hour && d%time.Hour == 0 {
		return plural(int64(d/time.Hour), "hour")
	}
	return plural(int64(d.Round(time.Minute)/time.Minute), "minute")
}
