package domain

import (
	"context"
	"strings"
)

// ContactRequest represents a contact form submission. It is built from the
// incoming request body (JSON or form-encoded), validated, handed to the mail
// dispatcher and then discarded - nothing is persisted.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,contact_email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,contact_phone"`
	Service string `json:"service" form:"service" validate:"required,max=100"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=1000"`
	// Token is the Cloudflare Turnstile response issued by the widget.
	Token string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
}

// Normalize trims surrounding whitespace from every field so validation and
// mail composition operate on the significant content only.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
	r.Message = strings.TrimSpace(r.Message)
	r.Token = strings.TrimSpace(r.Token)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the request, verifies the Turnstile token and
	// dispatches the notification (and optional confirmation) email.
	Submit(ctx context.Context, req *ContactRequest) error
}

// TokenVerifier checks a client-supplied CAPTCHA token against the
// verification service. It never fails the caller with an error: any
// upstream problem is treated as a rejected token.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// ContactMailer delivers the formatted messages for a submission.
type ContactMailer interface {
	// IsConfigured reports whether the SMTP transport has credentials.
	IsConfigured() bool
	// SendNotification mails the submission to the business recipient,
	// with Reply-To set to the submitter.
	SendNotification(req *ContactRequest) error
	// SendConfirmation mails an acknowledgement to the submitter.
	SendConfirmation(req *ContactRequest) error
}
