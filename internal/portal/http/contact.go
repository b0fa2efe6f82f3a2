package http

import (
	"errors"
	"net/http"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

const (
	ContactSentMessage   = "Thank you for your message. We will contact you soon!"
	ContactFailedMessage = "There was an error sending your message. Please try again later."
)

type ContactHandler struct {
	ContactService *service.ContactService
}

// ServeHTTP godoc
//
//	@Summary		Contact Form
//	@Description	Validates the contact page form and relays it by email. A blank organization is sent as "Not provided".
//	@Tags			Contact
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.ContactRequest	true	"Contact form"
//	@Success		202		{object}	portalsdk.ContactResponse	"message"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"validation_error with per-field details"
//	@Failure		502		{object}	portalsdk.ErrorResponse		"relay_failed"
//	@Router			/v1/contact [post].
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.ContactService.Send(ctx, domain.ContactMessage{
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Service:      req.Service,
		Message:      req.Message,
	})
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch {
		case errors.Is(err, service.ErrRelayFailed):
			writeError(w, http.StatusBadGateway, portalsdk.ErrorCodeRelayFailed, ContactFailedMessage)
		default:
			log.Error("failed to send contact message", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, ContactFailedMessage)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, portalsdk.ContactResponse{Message: ContactSentMessage})
}
