package domain

import (
	"context"
	"errors"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required" validate:"notblank"`
	Email   string `json:"email" binding:"required" validate:"notblank,email_shape"`
	Subject string `json:"subject" binding:"required" validate:"notblank"`
	Message string `json:"message" binding:"required" validate:"notblank"`
}

// Error kinds the contact flow can produce. Handlers map these to HTTP
// status codes; anything else is treated as an internal error.
var (
	ErrMissingFields  = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrNotConfigured  = errors.New("email service is not configured")
	ErrDeliveryFailed = errors.New("failed to deliver message")
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and forwards a contact form message,
	// returning the delivery provider's message id on success.
	SendContactMessage(ctx context.Context, req *ContactRequest) (string, error)
}

// EmailSender delivers a formatted contact email to the configured
// recipient and returns the provider-issued message id.
type EmailSender interface {
	IsConfigured() bool
	SendContactEmail(ctx context.Context, data ContactEmailData) (string, error)
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}
