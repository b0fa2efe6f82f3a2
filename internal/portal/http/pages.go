package http

import (
	"net/http"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// LoginPath is where a logged out visitor is sent from the client area.
const LoginPath = "/login"

type ClientResourcesHandler struct {
	GateService *service.GateService
}

// ServeHTTP godoc
//
//	@Summary		Client Resources
//	@Description	Lists the downloadable resources for a logged in client. Logged out visitors are redirected to /login.
//	@Tags			Pages
//	@Produce		json
//	@Success		200	{object}	portalsdk.ClientResourcesResponse	"username, fullName, organization, resources"
//	@Success		302	"Redirect to /login"
//	@Router			/client-resources [get].
func (h *ClientResourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	if !session.LoggedIn {
		httpx.NoCache(w)
		http.Redirect(w, r, LoginPath, http.StatusFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ClientResourcesResponse{
		Username:     session.Username,
		FullName:     session.FullName,
		Organization: session.Organization,
		Resources:    toResources(domain.ClientResources),
	})
}

type ArticleHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Article Redirect
//	@Description	Sends the browser to the externally hosted article.
//	@Tags			Pages
//	@Param			id	path	string	true	"Article id"
//	@Success		302	"Redirect to the article"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Router			/article/{id} [get].
func (h *ArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	article, ok := domain.LookupArticle(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, portalsdk.ErrorCodeNotFound, "Article not found")
		return
	}
	http.Redirect(w, r, article.ExternalURL, http.StatusFound)
}
