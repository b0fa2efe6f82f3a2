package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// ErrRelayFailed wraps any failure of the email relay.
var ErrRelayFailed = errors.New("contact relay failed")

// DefaultRecipient receives every inquiry unless configured otherwise.
const DefaultRecipient = "amir@clarityimpactfinance.com"

// Relay dispatches a templated email. *emailjs.Client satisfies it.
type Relay interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string) error
}

// ContactService validates visitor inquiries and relays them by email.
type ContactService struct {
	Relay      Relay
	ServiceID  string
	TemplateID string
	Recipient  string
}

// Send relays the contact page form. A blank organization is sent as
// "Not provided".
func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) error {
	if strings.TrimSpace(msg.Organization) == "" {
		msg.Organization = domain.DefaultOrganization
	}
	return s.relay(ctx, "page", msg)
}

// SendContactMessage relays the chat form, which has no organization or
// service fields.
func (s *ContactService) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return s.relay(ctx, "chat", msg)
}

func (s *ContactService) relay(ctx context.Context, source string, msg domain.ContactMessage) error {
	log := slogx.FromContext(ctx)

	// 1. Local validation, nothing is sent on failure
	if err := msg.Validate(); err != nil {
		return err
	}

	// 2. Template parameters
	recipient := s.Recipient
	if recipient == "" {
		recipient = DefaultRecipient
	}
	email := strings.TrimSpace(msg.Email)
	params := map[string]string{
		"to_email":   recipient,
		"from_name":  msg.Name,
		"from_email": email,
		"message":    msg.Message,
		"reply_to":   email,
	}
	if msg.Organization != "" {
		params["organization"] = msg.Organization
	}
	if msg.Service != "" {
		params["service"] = msg.Service
	}

	// 3. Exactly one dispatch
	if err := s.Relay.Send(ctx, s.ServiceID, s.TemplateID, params); err != nil {
		log.Error("failed to relay contact message",
			slog.String("source", source),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	log.Info("contact message relayed",
		slog.String("source", source),
		slog.String("from_email", email),
	)
	return nil
}

// LogRelay only logs what would have been sent. It stands in for EmailJS in
// development and in the end-to-end tests.
type LogRelay struct {
	Logger *slog.Logger
}

func (r LogRelay) Send(ctx context.Context, serviceID, templateID string, params map[string]string) error {
	logger := r.Logger
	if logger == nil {
		logger = slogx.FromContext(ctx)
	}
	logger.Info("dry run: email not sent",
		slog.String("service_id", serviceID),
		slog.String("template_id", templateID),
		slog.String("to_email", params["to_email"]),
		slog.String("from_email", params["from_email"]),
	)
	return nil
}
