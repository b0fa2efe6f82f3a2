package portalsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ValidateInvitationCode asks whether code can still be redeemed.
func (c *Client) ValidateInvitationCode(ctx context.Context, code string) (bool, error) {
	var out InvitationValidityResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/invitations/"+url.PathEscape(code), nil, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*SessionResponse, error) {
	var out SessionResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent)
}

func (c *Client) Session(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/auth/session", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientResources returns the catalogue, or ErrRedirect with the target
// location when the session is not logged in.
func (c *Client) ClientResources(ctx context.Context) (*ClientResourcesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/client-resources", nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusFound || resp.StatusCode == http.StatusSeeOther {
		resp.Body.Close()
		return nil, &RedirectError{Location: resp.Header.Get("Location")}
	}

	var out ClientResourcesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArticleURL resolves an article id to its external location.
func (c *Client) ArticleURL(ctx context.Context, id string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/article/"+url.PathEscape(id), nil)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusFound {
		resp.Body.Close()
		return resp.Header.Get("Location"), nil
	}
	return "", decodeJSON(resp, nil, http.StatusFound)
}

// RedirectError reports that a guarded page sent the browser elsewhere.
type RedirectError struct {
	Location string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirected to %s", e.Location)
}
