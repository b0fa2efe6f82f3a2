package portalsdk

import (
	"context"
	"net/http"
	"net/url"
)

func conversationPath(id string, rest string) string {
	return "/v1/chat/conversations/" + url.PathEscape(id) + rest
}

func (c *Client) CreateConversation(ctx context.Context) (*Conversation, error) {
	var out Conversation
	if err := c.doJSON(ctx, http.MethodPost, "/v1/chat/conversations", nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodGet, conversationPath(id, ""), nil)
}

func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, conversationPath(id, ""), nil, nil, http.StatusNoContent)
}

// SendMessage blocks until the assistant has replied.
func (c *Client) SendMessage(ctx context.Context, id, text string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodPost, conversationPath(id, "/messages"), SendMessageRequest{Text: text})
}

func (c *Client) AskExample(ctx context.Context, id, question string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodPost, conversationPath(id, "/examples"), AskExampleRequest{Question: question})
}

func (c *Client) SelectCategory(ctx context.Context, id, category string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodPut, conversationPath(id, "/category"), SelectCategoryRequest{Category: category})
}

func (c *Client) ClearCategory(ctx context.Context, id string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodDelete, conversationPath(id, "/category"), nil)
}

func (c *Client) OpenContactForm(ctx context.Context, id string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodPost, conversationPath(id, "/contact"), nil)
}

func (c *Client) CancelContactForm(ctx context.Context, id string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodDelete, conversationPath(id, "/contact"), nil)
}

// SubmitContactForm returns the conversation with ContactFormErrors filled
// when a field is rejected. A relay failure is an *APIError with status 502.
func (c *Client) SubmitContactForm(ctx context.Context, id string, form ContactForm) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodPost, conversationPath(id, "/contact/submit"), form)
}

func (c *Client) ResetConversation(ctx context.Context, id string) (*Conversation, error) {
	return c.conversationCall(ctx, http.MethodPost, conversationPath(id, "/reset"), nil)
}

// SendContact relays the contact page form.
func (c *Client) SendContact(ctx context.Context, req ContactRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/contact", req, nil, http.StatusAccepted)
}

func (c *Client) conversationCall(ctx context.Context, method, path string, in any) (*Conversation, error) {
	var out Conversation
	if err := c.doJSON(ctx, method, path, in, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
