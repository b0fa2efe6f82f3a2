package portalsdk

import (
	"context"
	"net/http"
	"net/url"
)

// AdminLogin stores the admin cookie in the client's jar.
func (c *Client) AdminLogin(ctx context.Context, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/admin/login", AdminLoginRequest{Password: password}, nil, http.StatusNoContent)
}

func (c *Client) AdminLogout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/admin/logout", nil, nil, http.StatusNoContent)
}

func (c *Client) CreateInvitationCode(ctx context.Context, prefix string) (*InvitationCode, error) {
	var out InvitationCode
	req := CreateInvitationRequest{Prefix: prefix}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/admin/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInvitationCodes(ctx context.Context) ([]InvitationCode, error) {
	var out InvitationCodeList
	if err := c.doJSON(ctx, http.MethodGet, "/v1/admin/invitations", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Codes, nil
}

func (c *Client) DeleteInvitationCode(ctx context.Context, code string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/admin/invitations/"+url.PathEscape(code), nil, nil, http.StatusNoContent)
}

func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	var out Account
	if err := c.doJSON(ctx, http.MethodPost, "/v1/admin/accounts", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var out AccountList
	if err := c.doJSON(ctx, http.MethodGet, "/v1/admin/accounts", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/admin/accounts/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (c *Client) GeneratePassword(ctx context.Context) (string, error) {
	var out GeneratedPasswordResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/admin/passwords", nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Password, nil
}
