package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      signupInput
		wantErr bool
	}{
		{"valid", signupInput{"alice", "a@x.com", "secret123"}, false},
		{"plus address", signupInput{"alice", "a+tag@mail.x.com", "secret123"}, false},
		{"no at sign", signupInput{"alice", "a.x.com", "secret123"}, true},
		{"no domain", signupInput{"alice", "a@", "secret123"}, true},
		{"spaces", signupInput{"alice", "a b@x.com", "secret123"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordInput_Validate(t *testing.T) {
	assert.NoError(t, passwordInput{"secret123"}.Validate())
	assert.Error(t, passwordInput{""}.Validate())
	assert.Error(t, passwordInput{"12345"}.Validate())
}
