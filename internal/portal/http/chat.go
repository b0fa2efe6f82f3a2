package http

import (
	"errors"
	"net/http"

	"github.com/clarityimpactfinance/portal/internal/portal/chat"
	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/faq"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// ChatHandler exposes the IRIS assistant. Conversations are scoped to the
// browser session that created them.
type ChatHandler struct {
	Conversations *chat.Registry
}

// conversation resolves {id} for the calling session, writing a 404 when
// it does not exist or belongs to someone else.
func (h *ChatHandler) conversation(w http.ResponseWriter, r *http.Request) (*chat.Conversation, bool) {
	sid, ok := sessionID(w, r)
	if !ok {
		return nil, false
	}

	c, err := h.Conversations.Get(r.PathValue("id"), sid)
	if err != nil {
		writeError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound, "Conversation not found")
		return nil, false
	}
	return c, true
}

// respond writes the snapshot, or maps a conversation error.
func respond(w http.ResponseWriter, r *http.Request, snap chat.Snapshot, err error) {
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrClosed), errors.Is(err, chat.ErrConversationNotFound):
			writeError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound, "Conversation not found")
		case errors.Is(err, chat.ErrBusy):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodeConflict, "IRIS is still typing")
		case errors.Is(err, chat.ErrContactFormClosed):
			writeError(w, http.StatusConflict, portalsdk.ErrorCodeConflict, "The contact form is not open")
		default:
			slogx.FromContext(r.Context()).Error("chat operation failed", "err", err)
			writeError(w, http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Chat operation failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConversation(snap))
}

// HandleCreate handles POST /v1/chat/conversations
//
//	@Summary		Start Conversation
//	@Description	Starts a conversation containing only the IRIS greeting, with the example questions shown.
//	@Tags			Chat
//	@Produce		json
//	@Success		201	{object}	portalsdk.Conversation	"conversation"
//	@Router			/v1/chat/conversations [post].
func (h *ChatHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	c := h.Conversations.Create(sid)
	slogx.FromContext(r.Context()).Info("conversation started", "conversation_id", c.ID())

	httpx.WriteJSON(w, http.StatusCreated, toConversation(c.Snapshot()))
}

// HandleGet handles GET /v1/chat/conversations/{id}
//
//	@Summary		Get Conversation
//	@Tags			Chat
//	@Produce		json
//	@Param			id	path		string					true	"Conversation id"
//	@Success		200	{object}	portalsdk.Conversation	"conversation"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/chat/conversations/{id} [get].
func (h *ChatHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}
	respond(w, r, c.Snapshot(), nil)
}

// HandleDelete handles DELETE /v1/chat/conversations/{id}
//
//	@Summary		End Conversation
//	@Description	Closes the conversation. Pending replies are dropped.
//	@Tags			Chat
//	@Param			id	path	string	true	"Conversation id"
//	@Success		204	"No Content"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/chat/conversations/{id} [delete].
func (h *ChatHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.Conversations.Delete(r.PathValue("id"), sid); err != nil {
		writeError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound, "Conversation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSendMessage handles POST /v1/chat/conversations/{id}/messages
//
//	@Summary		Send Message
//	@Description	Appends the visitor's text and waits for the IRIS reply. Blank text is ignored.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Conversation id"
//	@Param			request	body		portalsdk.SendMessageRequest	true	"Message"
//	@Success		200		{object}	portalsdk.Conversation		"conversation"
//	@Failure		404		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse		"a reply is still pending"
//	@Router			/v1/chat/conversations/{id}/messages [post].
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}

	var req portalsdk.SendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap, err := c.Submit(r.Context(), req.Text)
	respond(w, r, snap, err)
}

// HandleAskExample handles POST /v1/chat/conversations/{id}/examples
//
//	@Summary		Ask Example Question
//	@Description	Asks one of the popular questions. "Contact Us" opens the contact form.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Conversation id"
//	@Param			request	body		portalsdk.AskExampleRequest	true	"Question"
//	@Success		200		{object}	portalsdk.Conversation		"conversation"
//	@Failure		404		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse		"a reply is still pending"
//	@Router			/v1/chat/conversations/{id}/examples [post].
func (h *ChatHandler) HandleAskExample(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}

	var req portalsdk.AskExampleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap, err := c.AskExample(r.Context(), req.Question)
	respond(w, r, snap, err)
}

// HandleSelectCategory handles PUT /v1/chat/conversations/{id}/category
//
//	@Summary		Select Topic
//	@Description	Scopes later questions to cdfi, nmtc or charterSchools and posts the topic greeting.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Conversation id"
//	@Param			request	body		portalsdk.SelectCategoryRequest	true	"Topic"
//	@Success		200		{object}	portalsdk.Conversation			"conversation"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"unknown topic"
//	@Failure		404		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/chat/conversations/{id}/category [put].
func (h *ChatHandler) HandleSelectCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}

	var req portalsdk.SelectCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := faq.ParseCategory(req.Category)
	if err != nil || category == faq.CategoryNone {
		writeError(w, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest, "Unknown topic: "+req.Category)
		return
	}

	snap, err := c.SelectCategory(r.Context(), category)
	respond(w, r, snap, err)
}

// HandleClearCategory handles DELETE /v1/chat/conversations/{id}/category
//
//	@Summary		Back To Main Menu
//	@Tags			Chat
//	@Produce		json
//	@Param			id	path		string					true	"Conversation id"
//	@Success		200	{object}	portalsdk.Conversation	"conversation"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/chat/conversations/{id}/category [delete].
func (h *ChatHandler) HandleClearCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}
	snap, err := c.ClearCategory()
	respond(w, r, snap, err)
}

// HandleOpenContactForm handles POST /v1/chat/conversations/{id}/contact
//
//	@Summary		Open Contact Form
//	@Tags			Chat
//	@Produce		json
//	@Param			id	path		string					true	"Conversation id"
//	@Success		200	{object}	portalsdk.Conversation	"conversation"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/chat/conversations/{id}/contact [post].
func (h *ChatHandler) HandleOpenContactForm(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}
	snap, err := c.OpenContactForm()
	respond(w, r, snap, err)
}

// HandleCancelContactForm handles DELETE /v1/chat/conversations/{id}/contact
//
//	@Summary		Cancel Contact Form
//	@Tags			Chat
//	@Produce		json
//	@Param			id	path		string					true	"Conversation id"
//	@Success		200	{object}	portalsdk.Conversation	"conversation"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/chat/conversations/{id}/contact [delete].
func (h *ChatHandler) HandleCancelContactForm(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}
	snap, err := c.CancelContactForm()
	respond(w, r, snap, err)
}

// HandleSubmitContactForm handles POST /v1/chat/conversations/{id}/contact/submit
//
//	@Summary		Submit Contact Form
//	@Description	Validates and relays the in-chat contact form. Field errors come back in contactFormErrors with status 200.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Conversation id"
//	@Param			request	body		portalsdk.ContactForm	true	"Contact form"
//	@Success		200		{object}	portalsdk.Conversation	"conversation"
//	@Failure		404		{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse	"form not open or already sending"
//	@Failure		502		{object}	portalsdk.ErrorResponse	"email relay failed"
//	@Router			/v1/chat/conversations/{id}/contact/submit [post].
func (h *ChatHandler) HandleSubmitContactForm(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}

	var req portalsdk.ContactForm
	if !decodeBody(w, r, &req) {
		return
	}

	snap, err := c.SubmitContactForm(r.Context(), chat.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respond(w, r, snap, nil)
	case err != nil && snap.ID != "":
		// The relay failed; the transcript already carries the apology.
		writeError(w, http.StatusBadGateway, portalsdk.ErrorCodeRelayFailed, chat.ContactFailed)
	default:
		respond(w, r, snap, err)
	}
}

// HandleReset handles POST /v1/chat/conversations/{id}/reset
//
//	@Summary		Reset Conversation
//	@Description	Drops any pending reply and leaves only the greeting.
//	@Tags			Chat
//	@Produce		json
//	@Param			id	path		string					true	"Conversation id"
//	@Success		200	{object}	portalsdk.Conversation	"conversation"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/chat/conversations/{id}/reset [post].
func (h *ChatHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	c, ok := h.conversation(w, r)
	if !ok {
		return
	}
	snap, err := c.Reset()
	respond(w, r, snap, err)
}
