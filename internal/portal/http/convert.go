package http

import (
	"github.com/clarityimpactfinance/portal/internal/portal/chat"
	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/faq"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
)

func toAccount(p domain.AccountProfile) portalsdk.Account {
	return portalsdk.Account{
		ID:           p.ID,
		Username:     p.Username,
		FullName:     p.FullName,
		Organization: p.Organization,
		CreatedAt:    p.CreatedAt,
	}
}

func toSession(s domain.Session) portalsdk.SessionResponse {
	if !s.LoggedIn {
		return portalsdk.SessionResponse{}
	}
	return portalsdk.SessionResponse{
		LoggedIn:     true,
		Username:     s.Username,
		FullName:     s.FullName,
		Organization: s.Organization,
	}
}

func toInvitationCode(c domain.InvitationCodeStatus) portalsdk.InvitationCode {
	return portalsdk.InvitationCode{
		Code:      c.Code,
		CreatedAt: c.CreatedAt,
		ExpiresAt: c.ExpiresAt,
		Used:      c.Used,
		Expired:   c.Expired,
	}
}

func toConversation(s chat.Snapshot) portalsdk.Conversation {
	msgs := make([]portalsdk.ChatMessage, 0, len(s.Messages))
	for _, m := range s.Messages {
		var actions []portalsdk.ChatAction
		for _, a := range m.Actions {
			actions = append(actions, portalsdk.ChatAction{Label: a.Label, Action: a.Action})
		}
		msgs = append(msgs, portalsdk.ChatMessage{Type: string(m.Type), Text: m.Text, Actions: actions})
	}

	out := portalsdk.Conversation{
		ID:              s.ID,
		State:           string(s.State),
		Category:        s.Category,
		ShowExamples:    s.ShowExamples,
		ShowContactForm: s.ShowContactForm,
		ContactForm: portalsdk.ContactForm{
			Name:    s.ContactForm.Name,
			Email:   s.ContactForm.Email,
			Message: s.ContactForm.Message,
		},
		ContactFormErrors: s.ContactFormErrors,
		Messages:          msgs,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.ShowExamples {
		out.ExampleQuestions = faq.ExampleQuestions
	}
	return out
}

func toResources(rs []domain.Resource) []portalsdk.Resource {
	out := make([]portalsdk.Resource, 0, len(rs))
	for _, r := range rs {
		out = append(out, portalsdk.Resource{
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			Label:       r.Label,
		})
	}
	return out
}
