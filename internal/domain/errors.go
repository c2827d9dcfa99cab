package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrVerificationFailed is returned when the Turnstile token is missing,
// expired or rejected by the verification service.
var ErrVerificationFailed = errors.New("security verification failed")

// ErrMailerNotConfigured is returned when the SMTP transport has no
// credentials and the contact form cannot deliver messages.
var ErrMailerNotConfigured = errors.New("email service is not configured")

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// MailError wraps a transport failure from the mail dispatcher. The wrapped
// error is for server-side logs only and must never reach the client.
type MailError struct {
	Err error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("mail dispatch failed: %v", e.Err)
}

func (e *MailError) Unwrap() error {
	return e.Err
}
