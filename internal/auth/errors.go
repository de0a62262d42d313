package auth

import "errors"

var (
	// ErrInvalidUsername is returned when the username is shorter than 3 chars.
	ErrInvalidUsername = errors.New("username must be at least 3 characters")

	// ErrInvalidEmail is returned when the email is not well-formed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword is returned when the password is shorter than 6 chars.
	ErrInvalidPassword = errors.New("password must be at least 6 characters")

	// ErrEmailTaken is returned when the email already has an account.
	ErrEmailTaken = errors.New("user already exists")

	// ErrUserNotFound is returned when no account matches the email.
	ErrUserNotFound = errors.New("user not found")
)
