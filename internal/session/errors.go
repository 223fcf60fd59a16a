package session

import "errors"

var (
	// ErrAlreadyExists is returned by Signup when the email is taken.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned by Login when no account matches
	// the supplied email and password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
