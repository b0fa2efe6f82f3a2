package portal_test

import (
	"strings"
	"testing"

	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestChatConversation drives IRIS through a topic and the in-chat contact
// form. The relay runs in dry-run mode so nothing leaves the container.
func TestChatConversation(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := portalsdk.NewClient(baseURL)

	conv, err := client.CreateConversation(ctx)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	require.NotEmpty(t, conv.ExampleQuestions)

	conv, err = client.AskExample(ctx, conv.ID, conv.ExampleQuestions[0])
	require.NoError(t, err)
	require.Len(t, conv.Messages, 3)
	require.Equal(t, "bot", conv.Messages[2].Type)

	conv, err = client.SelectCategory(ctx, conv.ID, "cdfi")
	require.NoError(t, err)
	require.Equal(t, "cdfi", conv.Category)

	conv, err = client.SendMessage(ctx, conv.ID, "What is a CDFI?")
	require.NoError(t, err)
	require.Equal(t, "bot", conv.Messages[len(conv.Messages)-1].Type)

	conv, err = client.OpenContactForm(ctx, conv.ID)
	require.NoError(t, err)
	require.True(t, conv.ShowContactForm)

	conv, err = client.SubmitContactForm(ctx, conv.ID, portalsdk.ContactForm{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Can we talk about NMTC allocations?",
	})
	require.NoError(t, err)
	require.False(t, conv.ShowContactForm)
	require.True(t, strings.HasPrefix(conv.Messages[len(conv.Messages)-1].Text, "Thank you, Ada!"))

	conv, err = client.ResetConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
}

// TestContactPage verifies the page form validates before relaying.
func TestContactPage(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := portalsdk.NewClient(baseURL)

	err := client.SendContact(ctx, portalsdk.ContactRequest{Name: "Ada", Email: "nope"})
	var apiErr *portalsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, portalsdk.ErrorCodeValidation, apiErr.Code)
	require.Contains(t, apiErr.Details, "email")
	require.Contains(t, apiErr.Details, "message")

	require.NoError(t, client.SendContact(ctx, portalsdk.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Service: "NMTC Consulting",
		Message: "Hello",
	}))
}
