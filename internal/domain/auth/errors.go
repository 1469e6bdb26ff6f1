package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid or expired session")
	ErrSessionRevoked       = errors.New("session has been revoked")
	ErrOldPasswordIncorrect = errors.New("old password incorrect")
	ErrSessionNotFound      = errors.New("session not found")
)
