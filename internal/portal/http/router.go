package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/chat"
	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/internal/portal/store"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/jwtx"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
	"github.com/go-chi/chi/v5/middleware"

	_ "github.com/clarityimpactfinance/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// AdminScope is granted by the admin cookie and required by every admin
// endpoint except login and logout.
const AdminScope = "admin"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	SessionCookie  *httpx.CookieIssuer
	AdminCookie    *httpx.CookieIssuer
	GateService    *service.GateService
	AdminService   *service.AdminService
	ContactService *service.ContactService
	Conversations  *chat.Registry
}

func NewRouter(
	signer jwtx.Signer,
	sessionCookie *httpx.CookieIssuer,
	buildVersion string,
	st store.Store,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		signer:        signer,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		logger:        logger,
		SessionCookie: sessionCookie,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		middleware.Recoverer,
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
		httpx.SessionMiddleware(r.SessionCookie),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerGate()
	r.registerAdmin()
	r.registerChat()
	r.registerContact()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clarity Impact Finance Portal API
//	@version		0.1.0
//	@description	Backend for the Clarity Impact Finance website: the IRIS FAQ assistant, the contact relay and the invitation gated client portal.
//	@description
//	@description	Every browser gets a signed session cookie on its first request. Admin endpoints additionally need the admin cookie issued by /v1/admin/login.
//
//	@contact.name	Clarity Impact Finance
//	@contact.url	https://clarityimpactfinance.com
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	AdminCookie
//	@in							cookie
//	@name						portal_admin
//	@description				Signed admin cookie set by POST /v1/admin/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerGate() {
	r.Mux.Handle("POST /v1/auth/login", &LoginHandler{GateService: r.GateService})
	r.Mux.Handle("POST /v1/auth/register", &RegisterHandler{GateService: r.GateService})
	r.Mux.Handle("POST /v1/auth/logout", &LogoutHandler{GateService: r.GateService})
	r.Mux.Handle("GET /v1/auth/session", &SessionHandler{GateService: r.GateService})
	r.Mux.Handle("GET /v1/invitations/{code}", &InvitationValidityHandler{GateService: r.GateService})
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService, Cookie: r.AdminCookie}

	// Login and logout are the only admin endpoints without the admin cookie
	r.Mux.HandleFunc("POST /v1/admin/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /v1/admin/logout", h.HandleLogout)

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RequireScope(r.AdminCookie, AdminScope))
	}

	r.Mux.Handle("GET /v1/admin/invitations", secured(h.HandleListInvitations))
	r.Mux.Handle("POST /v1/admin/invitations", secured(h.HandleCreateInvitation))
	r.Mux.Handle("DELETE /v1/admin/invitations/{code}", secured(h.HandleDeleteInvitation))
	r.Mux.Handle("GET /v1/admin/accounts", secured(h.HandleListAccounts))
	r.Mux.Handle("POST /v1/admin/accounts", secured(h.HandleCreateAccount))
	r.Mux.Handle("DELETE /v1/admin/accounts/{id}", secured(h.HandleDeleteAccount))
	r.Mux.Handle("POST /v1/admin/passwords", secured(h.HandleGeneratePassword))
}

func (r *Router) registerChat() {
	h := &ChatHandler{Conversations: r.Conversations}

	r.Mux.HandleFunc("POST /v1/chat/conversations", h.HandleCreate)
	r.Mux.HandleFunc("GET /v1/chat/conversations/{id}", h.HandleGet)
	r.Mux.HandleFunc("DELETE /v1/chat/conversations/{id}", h.HandleDelete)
	r.Mux.HandleFunc("POST /v1/chat/conversations/{id}/messages", h.HandleSendMessage)
	r.Mux.HandleFunc("POST /v1/chat/conversations/{id}/examples", h.HandleAskExample)
	r.Mux.HandleFunc("PUT /v1/chat/conversations/{id}/category", h.HandleSelectCategory)
	r.Mux.HandleFunc("DELETE /v1/chat/conversations/{id}/category", h.HandleClearCategory)
	r.Mux.HandleFunc("POST /v1/chat/conversations/{id}/contact", h.HandleOpenContactForm)
	r.Mux.HandleFunc("DELETE /v1/chat/conversations/{id}/contact", h.HandleCancelContactForm)
	r.Mux.HandleFunc("POST /v1/chat/conversations/{id}/contact/submit", h.HandleSubmitContactForm)
	r.Mux.HandleFunc("POST /v1/chat/conversations/{id}/reset", h.HandleReset)
}

func (r *Router) registerContact() {
	r.Mux.Handle("POST /v1/contact", &ContactHandler{ContactService: r.ContactService})
}

func (r *Router) registerPages() {
	r.Mux.Handle("GET /client-resources", &ClientResourcesHandler{GateService: r.GateService})
	r.Mux.Handle("GET /article/{id}", &ArticleHandler{})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
