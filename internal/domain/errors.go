package domain

import "errors"

var (
	// ErrCapabilityMissing means no wallet is installed; the user has to add one before connecting.
	ErrCapabilityMissing = errors.New("wallet capability missing")
	ErrAuthRejected      = errors.New("wallet connection rejected")
	ErrNotTrusted        = errors.New("wallet has not trusted this app")
	ErrConnectInProgress = errors.New("wallet connection already in progress")
	ErrNotConnected      = errors.New("wallet not connected")
	ErrFetchFailed       = errors.New("fetch remote list failed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrListNotConfigured = errors.New("list address not configured")
	ErrSecretNotFound    = errors.New("secret not found")
)
