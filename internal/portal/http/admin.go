package http

import (
	"errors"
	"net/http"

	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// AdminHandler handles the admin panel endpoints.
type AdminHandler struct {
	AdminService *service.AdminService
	Cookie       *httpx.CookieIssuer
}

// HandleLogin handles POST /v1/admin/login
//
//	@Summary		Admin Login
//	@Description	Compares against the configured admin password and sets the admin cookie.
//	@Tags			Admin
//	@Accept			json
//	@Param			request	body	portalsdk.AdminLoginRequest	true	"Admin password"
//	@Success		204		"No Content"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/login [post].
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.AdminLoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.AdminService.AuthenticateAdmin(ctx, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredentials, "Invalid admin password")
		return
	}

	sid, _ := httpx.SessionID(ctx)
	if err := h.Cookie.Issue(w, sid); err != nil {
		slogx.FromContext(ctx).Error("failed to issue admin cookie", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to log in")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLogout handles POST /v1/admin/logout
//
//	@Summary		Admin Logout
//	@Tags			Admin
//	@Success		204	"No Content"
//	@Router			/v1/admin/logout [post].
func (h *AdminHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Cookie.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleListInvitations handles GET /v1/admin/invitations
//
//	@Summary		List Invitation Codes
//	@Description	Lists every invitation code with its used and expired flags.
//	@Tags			Admin
//	@Produce		json
//	@Security		AdminCookie
//	@Success		200	{object}	portalsdk.InvitationCodeList	"codes"
//	@Failure		401	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/admin/invitations [get].
func (h *AdminHandler) HandleListInvitations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	codes, err := h.AdminService.ListInvitationCodes(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invitation codes", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to list invitation codes")
		return
	}

	out := portalsdk.InvitationCodeList{Codes: make([]portalsdk.InvitationCode, 0, len(codes))}
	for _, c := range codes {
		out.Codes = append(out.Codes, toInvitationCode(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateInvitation handles POST /v1/admin/invitations
//
//	@Summary		Create Invitation Code
//	@Description	Mints prefix plus six random characters, valid for the configured TTL. The prefix defaults to CIF-.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		AdminCookie
//	@Param			request	body		portalsdk.CreateInvitationRequest	false	"Optional prefix"
//	@Success		201		{object}	portalsdk.InvitationCode			"code, createdAt, expiresAt"
//	@Failure		400		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/admin/invitations [post].
func (h *AdminHandler) HandleCreateInvitation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.CreateInvitationRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	code, err := h.AdminService.CreateInvitationCode(ctx, req.Prefix)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCodePrefix):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Prefix must be at most 10 characters")
		default:
			slogx.FromContext(ctx).Error("failed to create invitation code", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to create invitation code")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalsdk.InvitationCode{
		Code:      code.Code,
		CreatedAt: code.CreatedAt,
		ExpiresAt: code.ExpiresAt,
	})
}

// HandleDeleteInvitation handles DELETE /v1/admin/invitations/{code}
//
//	@Summary		Delete Invitation Code
//	@Description	Removes the code and forgets that it was used.
//	@Tags			Admin
//	@Security		AdminCookie
//	@Param			code	path	string	true	"Invitation code"
//	@Success		204		"No Content"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/invitations/{code} [delete].
func (h *AdminHandler) HandleDeleteInvitation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.AdminService.DeleteInvitationCode(ctx, r.PathValue("code")); err != nil {
		slogx.FromContext(ctx).Error("failed to delete invitation code", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to delete invitation code")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListAccounts handles GET /v1/admin/accounts
//
//	@Summary		List Client Accounts
//	@Description	Lists client accounts. Passwords are never returned.
//	@Tags			Admin
//	@Produce		json
//	@Security		AdminCookie
//	@Success		200	{object}	portalsdk.AccountList	"accounts"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/accounts [get].
func (h *AdminHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.AdminService.ListClientAccounts(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list client accounts", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to list client accounts")
		return
	}

	out := portalsdk.AccountList{Accounts: make([]portalsdk.Account, 0, len(accounts))}
	for _, a := range accounts {
		out.Accounts = append(out.Accounts, toAccount(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateAccount handles POST /v1/admin/accounts
//
//	@Summary		Create Client Account
//	@Description	Creates an account directly. No invitation code is consumed.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		AdminCookie
//	@Param			request	body		portalsdk.CreateAccountRequest	true	"Account"
//	@Success		201		{object}	portalsdk.Account				"id, username, fullName, organization, createdAt"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/admin/accounts [post].
func (h *AdminHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.CreateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.AdminService.CreateClientAccount(ctx, service.CreateClientAccountRequest{
		Username:     req.Username,
		Password:     req.Password,
		FullName:     req.FullName,
		Organization: req.Organization,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllFieldsRequired):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "All fields are required")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodeUsernameTaken, "Username already exists")
		default:
			slogx.FromContext(ctx).Error("failed to create client account", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to create client account")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAccount(account))
}

// HandleDeleteAccount handles DELETE /v1/admin/accounts/{id}
//
//	@Summary		Delete Client Account
//	@Tags			Admin
//	@Security		AdminCookie
//	@Param			id	path	string	true	"Account id"
//	@Success		204	"No Content"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/accounts/{id} [delete].
func (h *AdminHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.AdminService.DeleteClientAccount(ctx, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound, "Client account not found")
		default:
			slogx.FromContext(ctx).Error("failed to delete client account", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to delete client account")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGeneratePassword handles POST /v1/admin/passwords
//
//	@Summary		Generate Password
//	@Description	Suggests a random ten character password for a new account.
//	@Tags			Admin
//	@Produce		json
//	@Security		AdminCookie
//	@Success		200	{object}	portalsdk.GeneratedPasswordResponse	"password"
//	@Failure		401	{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/admin/passwords [post].
func (h *AdminHandler) HandleGeneratePassword(w http.ResponseWriter, r *http.Request) {
	password, err := h.AdminService.GeneratePassword()
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to generate password", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to generate password")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.GeneratedPasswordResponse{Password: password})
}
