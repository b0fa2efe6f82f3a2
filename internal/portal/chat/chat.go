// Package chat runs the IRIS assistant conversations.
//
// A Conversation is a small state machine over a transcript. Replies arrive
// after a simulated latency on an asyncx task tied to the conversation, so
// Reset and Close drop anything still pending.
package chat

import (
	"context"
	"errors"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
)

var (
	ErrBusy                 = errors.New("chat: a reply is still pending")
	ErrClosed               = errors.New("chat: conversation closed")
	ErrConversationNotFound = errors.New("chat: conversation not found")
	ErrContactFormClosed    = errors.New("chat: contact form is not open")
)

const (
	ContactSentTemplate = "Thank you, %s! Your message has been sent. We'll get back to you at %s as soon as possible."
	ContactFailed       = "I'm sorry, there was an error sending your message. Please try again or contact us directly at contact@clarityimpactfinance.com."
)

// Pruning keeps the greeting plus the most recent messages once a transcript
// outgrows these limits.
const (
	promptPruneLimit = 4 // before the contact prompt is appended
	promptKeepLast   = 3
	formPruneLimit   = 3 // before the contact form opens
	formKeepLast     = 2
)

// State is derived from the conversation's flags, Processing taking priority.
type State string

const (
	StateIdle                State = "idle"
	StateCategorySelected    State = "category_selected"
	StateAwaitingContactForm State = "awaiting_contact_form"
	StateProcessing          State = "processing"
)

// Sender delivers a validated contact form.
type Sender interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

// Options tunes a conversation. Zero latencies reply immediately.
type Options struct {
	ReplyLatency    time.Duration
	GreetingLatency time.Duration
	Sender          Sender
	Now             func() time.Time
}

// ContactForm is the in-chat form. It has no organization or service.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (f ContactForm) message() domain.ContactMessage {
	return domain.ContactMessage{Name: f.Name, Email: f.Email, Message: f.Message}
}

// Snapshot is a consistent copy of a conversation.
type Snapshot struct {
	ID                string               `json:"id"`
	State             State                `json:"state"`
	Category          string               `json:"category,omitempty"`
	ShowExamples      bool                 `json:"showExamples"`
	ShowContactForm   bool                 `json:"showContactForm"`
	ContactForm       ContactForm          `json:"contactForm"`
	ContactFormErrors map[string]string    `json:"contactFormErrors,omitempty"`
	Messages          []domain.ChatMessage `json:"messages"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func prune(msgs []domain.ChatMessage, limit, keep int) []domain.ChatMessage {
	if len(msgs) <= limit {
		return msgs
	}
	out := make([]domain.ChatMessage, 0, keep+1)
	out = append(out, msgs[0])
	return append(out, msgs[len(msgs)-keep:]...)
}
