package auth

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// User is an admin account. PasswordHash is the bcrypt hash; the plaintext
// password is never persisted or logged.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summary is the minimal user shape returned by login.
type Summary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SignupRequest is the request body for account creation.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signup constraints: username ≥ 3 chars, well-formed
// email, password ≥ 6 chars.
func (r *SignupRequest) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Username)) < 3 {
		return ErrInvalidUsername
	}
	if !validEmail(r.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(r.Password) < 6 {
		return ErrInvalidPassword
	}
	return nil
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login constraints.
func (r *LoginRequest) Validate() error {
	if !validEmail(r.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(r.Password) < 6 {
		return ErrInvalidPassword
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
