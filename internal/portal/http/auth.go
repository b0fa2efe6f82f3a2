package http

import (
	"errors"
	"net/http"

	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// RegisteredMessage is shown after a successful registration. The visitor
// still has to log in.
const RegisteredMessage = "Account created! Please log in."

type LoginHandler struct {
	GateService *service.GateService
}

// ServeHTTP godoc
//
//	@Summary		Client Login
//	@Description	Checks the username and password against the client accounts and marks the browser session as logged in.
//	@Tags			Gate
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	portalsdk.SessionResponse	"loggedIn, username, fullName, organization"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req portalsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.GateService.Login(ctx, sid, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredentials, "Invalid username or password")
		default:
			log.Error("failed to log in", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "An error occurred. Please try again.")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSession(session))
}

type RegisterHandler struct {
	GateService *service.GateService
}

// ServeHTTP godoc
//
//	@Summary		Client Registration
//	@Description	Creates a client account and consumes the invitation code. The browser is not logged in afterwards.
//	@Tags			Gate
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.RegisterRequest	true	"Registration form"
//	@Success		201		{object}	portalsdk.RegisterResponse	"message, account"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"validation_error, password_mismatch, invalid_invitation_code"
//	@Failure		409		{object}	portalsdk.ErrorResponse		"username_taken"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.GateService.Register(ctx, service.RegisterRequest{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Organization:    req.Organization,
		InvitationCode:  req.InvitationCode,
	})
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodePasswordMismatch, "Passwords do not match")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodeUsernameTaken, "Username already exists")
		case errors.Is(err, service.ErrInvalidInvitationCode):
			writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidCode, "Invalid or expired invitation code")
		default:
			log.Error("failed to register", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Registration failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalsdk.RegisterResponse{
		Message: RegisteredMessage,
		Account: toAccount(account),
	})
}

type LogoutHandler struct {
	GateService *service.GateService
}

// ServeHTTP godoc
//
//	@Summary		Client Logout
//	@Description	Clears the login flags of the browser session. Succeeds even when nobody was logged in.
//	@Tags			Gate
//	@Success		204	"No Content"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.GateService.Logout(ctx, sid); err != nil {
		slogx.FromContext(ctx).Error("failed to log out", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SessionHandler struct {
	GateService *service.GateService
}

// ServeHTTP godoc
//
//	@Summary		Current Session
//	@Description	Rehydrates the login state of the browser session.
//	@Tags			Gate
//	@Produce		json
//	@Success		200	{object}	portalsdk.SessionResponse	"loggedIn, username, fullName, organization"
//	@Failure		500	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.GateService.CurrentSession(ctx, sid)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to read session", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to read session")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSession(session))
}

type InvitationValidityHandler struct {
	GateService *service.GateService
}

// ServeHTTP godoc
//
//	@Summary		Check Invitation Code
//	@Description	Reports whether an invitation code exists, is unused and has not expired. Never consumes the code.
//	@Tags			Gate
//	@Produce		json
//	@Param			code	path		string									true	"Invitation code"
//	@Success		200		{object}	portalsdk.InvitationValidityResponse	"code, valid"
//	@Failure		500		{object}	portalsdk.ErrorResponse					"error, error_description"
//	@Router			/v1/invitations/{code} [get].
func (h *InvitationValidityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := r.PathValue("code")

	valid, err := h.GateService.ValidateInvitationCode(ctx, code)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to validate invitation code", "err", err)
		writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Failed to check invitation code")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.InvitationValidityResponse{Code: code, Valid: valid})
}
