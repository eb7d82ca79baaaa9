package services

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	minPasswordLength = 6
	// bcrypt refuses passwords longer than 72 bytes.
	maxPasswordLength = 72
	minUsernameLength = 3
	maxUsernameLength = 50
)

type signupInput struct {
	Username string
	Email    string
	Password string
}

func (in signupInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required, validation.Length(minUsernameLength, maxUsernameLength)),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, passwordRules...),
	)
}

var passwordRules = []validation.Rule{
	validation.Required,
	validation.Length(minPasswordLength, 0),
	validation.By(maxBytes(maxPasswordLength)),
}

func maxBytes(n int) validation.RuleFunc {
	return func(v interface{}) error {
		if s, ok := v.(string); ok && len(s) > n {
			return fmt.Errorf("must be no longer than %d bytes", n)
		}
		return nil
	}
}

type passwordInput struct {
	Password string
}

func (in passwordInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Password, passwordRules...),
	)
}
