package domain

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately shallow: something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultOrganization fills the organization of page inquiries left blank.
const DefaultOrganization = "Not provided"

// ServiceOptions are the services a visitor can pick on the contact page.
var ServiceOptions = []string{
	"Underwriting & Lending Strategy",
	"NMTC Consulting",
	"Federal Program Compliance",
	"Asset Management",
	"Impact Measurement",
	"Portfolio Risk Analysis",
	"Other",
}

// ContactMessage is a visitor inquiry to be relayed by email. Organization
// and Service are only collected by the contact page, not the chat form.
type ContactMessage struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
	Service      string `json:"service,omitempty"`
	Message      string `json:"message"`
}

// Validate applies the form checks shared by the chat and page forms.
func (m ContactMessage) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(m.Name) == "" {
		fields["name"] = "Name is required"
	}

	// The pattern sees the raw value, so surrounding whitespace is rejected.
	switch {
	case strings.TrimSpace(m.Email) == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(m.Email):
		fields["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(m.Message) == "" {
		fields["message"] = "Message is required"
	}

	return NewValidationError("", fields)
}
