package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/chat"
	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/faq"
	"github.com/clarityimpactfinance/portal/internal/portal/service"
	"github.com/clarityimpactfinance/portal/internal/portal/store/drivers/memory"
	"github.com/clarityimpactfinance/portal/pkg/cryptox"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/jwtx"
	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

const testAdminPassword = "letmein"

type fakeRelay struct {
	mu   sync.Mutex
	sent []map[string]string
	err  error
}

func (f *fakeRelay) Send(_ context.Context, _, _ string, params map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, params)
	return f.err
}

func (f *fakeRelay) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeRelay) last() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

func (f *fakeRelay) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type testServer struct {
	URL   string
	Relay *fakeRelay
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", pemKey)
	require.NoError(t, err)

	issuer := func(name, audience string, scopes ...string) *httpx.CookieIssuer {
		return &httpx.CookieIssuer{
			Name:     name,
			Audience: audience,
			Issuer:   "clarity-portal",
			Scopes:   scopes,
			TTL:      time.Hour,
			Signer:   signer,
			Verifier: jwtx.NewVerifierEdDSA("clarity-portal", []string{audience}, signer),
		}
	}

	st := memory.NewStore()
	relay := &fakeRelay{}
	contact := &service.ContactService{Relay: relay, ServiceID: "svc", TemplateID: "tpl"}

	conversations := chat.NewRegistry(context.Background(), chat.Options{Sender: contact})
	t.Cleanup(conversations.CloseAll)

	router := NewRouter(signer, issuer("portal_session", "portal-session"), "test", st, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router.AdminCookie = issuer("portal_admin", "portal-admin", AdminScope)
	router.GateService = &service.GateService{Store: st}
	router.AdminService = &service.AdminService{Store: st, Password: testAdminPassword}
	router.ContactService = contact
	router.Conversations = conversations
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Relay: relay}
}

func requireAPIError(t *testing.T, err error, status int, code string) *portalsdk.APIError {
	t.Helper()
	var apiErr *portalsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	client := portalsdk.NewClient(srv.URL)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)
}

func TestClientGate(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := portalsdk.NewClient(srv.URL)
	visitor := portalsdk.NewClient(srv.URL)

	// Admin endpoints need the admin cookie
	_, err := admin.ListInvitationCodes(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeUnauthorized)

	err = admin.AdminLogin(ctx, "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredentials)
	require.NoError(t, admin.AdminLogin(ctx, testAdminPassword))

	code, err := admin.CreateInvitationCode(ctx, "")
	require.NoError(t, err)
	require.Regexp(t, `^CIF-[0-9A-Z]{6}$`, code.Code)

	valid, err := visitor.ValidateInvitationCode(ctx, code.Code)
	require.NoError(t, err)
	require.True(t, valid)

	// Logged out visitors are sent to the login page
	_, err = visitor.ClientResources(ctx)
	var redirect *portalsdk.RedirectError
	require.ErrorAs(t, err, &redirect)
	require.Equal(t, LoginPath, redirect.Location)

	req := portalsdk.RegisterRequest{
		Username:       "ada",
		Password:       "pw",
		FullName:       "Ada Lovelace",
		Organization:   "Analytical Engines",
		InvitationCode: code.Code,
	}

	t.Run("missing fields", func(t *testing.T) {
		bad := req
		bad.FullName = ""
		_, err := visitor.Register(ctx, bad)
		apiErr := requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeValidation)
		require.Contains(t, apiErr.Details, "fullName")
	})

	t.Run("password mismatch", func(t *testing.T) {
		bad := req
		bad.ConfirmPassword = "other"
		_, err := visitor.Register(ctx, bad)
		requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodePasswordMismatch)
	})

	registered, err := visitor.Register(ctx, req)
	require.NoError(t, err)
	require.Equal(t, RegisteredMessage, registered.Message)
	require.Equal(t, "ada", registered.Account.Username)

	t.Run("registration does not log in", func(t *testing.T) {
		session, err := visitor.Session(ctx)
		require.NoError(t, err)
		require.False(t, session.LoggedIn)
	})

	t.Run("code is single use", func(t *testing.T) {
		again := req
		again.Username = "grace"
		_, err := visitor.Register(ctx, again)
		requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidCode)

		valid, err := visitor.ValidateInvitationCode(ctx, code.Code)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("duplicate username", func(t *testing.T) {
		fresh, err := admin.CreateInvitationCode(ctx, "VIP-")
		require.NoError(t, err)

		dup := req
		dup.InvitationCode = fresh.Code
		_, err = visitor.Register(ctx, dup)
		requireAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeUsernameTaken)
	})

	_, err = visitor.Login(ctx, "ada", "nope")
	requireAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredentials)

	session, err := visitor.Login(ctx, "ada", "pw")
	require.NoError(t, err)
	require.True(t, session.LoggedIn)
	require.Equal(t, "Ada Lovelace", session.FullName)

	resources, err := visitor.ClientResources(ctx)
	require.NoError(t, err)
	require.Equal(t, "ada", resources.Username)
	require.Len(t, resources.Resources, len(domain.ClientResources))

	t.Run("sessions are per browser", func(t *testing.T) {
		other := portalsdk.NewClient(srv.URL)
		s, err := other.Session(ctx)
		require.NoError(t, err)
		require.False(t, s.LoggedIn)
	})

	require.NoError(t, visitor.Logout(ctx))
	_, err = visitor.ClientResources(ctx)
	require.ErrorAs(t, err, &redirect)

	codes, err := admin.ListInvitationCodes(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	require.True(t, codes[0].Used)

	require.NoError(t, admin.AdminLogout(ctx))
	_, err = admin.ListAccounts(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeUnauthorized)
}

func TestAdminAccounts(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := portalsdk.NewClient(srv.URL)
	require.NoError(t, admin.AdminLogin(ctx, testAdminPassword))

	password, err := admin.GeneratePassword(ctx)
	require.NoError(t, err)
	require.Len(t, password, service.GeneratedPasswordN)

	_, err = admin.CreateAccount(ctx, portalsdk.CreateAccountRequest{Username: "ada"})
	requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest)

	acc, err := admin.CreateAccount(ctx, portalsdk.CreateAccountRequest{
		Username:     "ada",
		Password:     password,
		FullName:     "Ada Lovelace",
		Organization: "Analytical Engines",
	})
	require.NoError(t, err)

	_, err = admin.CreateAccount(ctx, portalsdk.CreateAccountRequest{
		Username: "ada", Password: "x", FullName: "x", Organization: "x",
	})
	requireAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeUsernameTaken)

	// Admin created accounts can log in straight away
	visitor := portalsdk.NewClient(srv.URL)
	_, err = visitor.Login(ctx, "ada", password)
	require.NoError(t, err)

	_, err = admin.CreateInvitationCode(ctx, "WAYTOOLONGPREFIX")
	requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest)

	require.NoError(t, admin.DeleteAccount(ctx, acc.ID))
	err = admin.DeleteAccount(ctx, acc.ID)
	requireAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)

	accounts, err := admin.ListAccounts(ctx)
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestChat(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	client := portalsdk.NewClient(srv.URL)

	conv, err := client.CreateConversation(ctx)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	require.Equal(t, faq.Greeting, conv.Messages[0].Text)
	require.True(t, conv.ShowExamples)
	require.Equal(t, faq.ExampleQuestions, conv.ExampleQuestions)

	t.Run("answers from the faq", func(t *testing.T) {
		want, ok := faq.Match("where are you located?", faq.CategoryNone)
		require.True(t, ok)

		got, err := client.SendMessage(ctx, conv.ID, "Where are you located?")
		require.NoError(t, err)
		require.Equal(t, want.Text, got.Messages[len(got.Messages)-1].Text)
		require.Equal(t, string(chat.StateIdle), got.State)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := client.SelectCategory(ctx, conv.ID, "crypto")
		requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest)
	})

	t.Run("topic greeting", func(t *testing.T) {
		got, err := client.SelectCategory(ctx, conv.ID, string(faq.CategoryNMTC))
		require.NoError(t, err)
		require.Equal(t, string(faq.CategoryNMTC), got.Category)
		require.Equal(t, faq.CategoryGreeting(faq.CategoryNMTC), got.Messages[len(got.Messages)-1].Text)

		got, err = client.ClearCategory(ctx, conv.ID)
		require.NoError(t, err)
		require.Empty(t, got.Category)
		require.True(t, got.ShowExamples)
	})

	t.Run("other sessions cannot see it", func(t *testing.T) {
		other := portalsdk.NewClient(srv.URL)
		_, err := other.GetConversation(ctx, conv.ID)
		requireAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
	})

	t.Run("contact form", func(t *testing.T) {
		_, err := client.SubmitContactForm(ctx, conv.ID, portalsdk.ContactForm{})
		requireAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeConflict)

		got, err := client.AskExample(ctx, conv.ID, faq.ContactUs)
		require.NoError(t, err)
		require.True(t, got.ShowContactForm)

		got, err = client.SubmitContactForm(ctx, conv.ID, portalsdk.ContactForm{Name: "Ada", Email: "not-an-email", Message: "hi"})
		require.NoError(t, err)
		require.Contains(t, got.ContactFormErrors, "email")
		require.Zero(t, srv.Relay.count())

		got, err = client.SubmitContactForm(ctx, conv.ID, portalsdk.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "hi"})
		require.NoError(t, err)
		require.False(t, got.ShowContactForm)
		require.Contains(t, got.Messages[len(got.Messages)-1].Text, "Thank you, Ada!")
		require.Equal(t, 1, srv.Relay.count())
	})

	t.Run("relay failure keeps the form open", func(t *testing.T) {
		srv.Relay.fail(errors.New("boom"))
		defer srv.Relay.fail(nil)

		_, err := client.OpenContactForm(ctx, conv.ID)
		require.NoError(t, err)

		_, err = client.SubmitContactForm(ctx, conv.ID, portalsdk.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "hi"})
		requireAPIError(t, err, http.StatusBadGateway, portalsdk.ErrorCodeRelayFailed)

		got, err := client.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		require.True(t, got.ShowContactForm)
		require.Equal(t, chat.ContactFailed, got.Messages[len(got.Messages)-1].Text)

		got, err = client.CancelContactForm(ctx, conv.ID)
		require.NoError(t, err)
		require.False(t, got.ShowContactForm)
	})

	t.Run("reset and delete", func(t *testing.T) {
		got, err := client.ResetConversation(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, got.Messages, 1)

		require.NoError(t, client.DeleteConversation(ctx, conv.ID))
		_, err = client.GetConversation(ctx, conv.ID)
		requireAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
	})
}

func TestContactPage(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	client := portalsdk.NewClient(srv.URL)

	err := client.SendContact(ctx, portalsdk.ContactRequest{Name: "Ada"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeValidation)
	require.Contains(t, apiErr.Details, "email")
	require.Contains(t, apiErr.Details, "message")
	require.Zero(t, srv.Relay.count())

	require.NoError(t, client.SendContact(ctx, portalsdk.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Tell me about NMTC",
	}))
	require.Equal(t, domain.DefaultOrganization, srv.Relay.last()["organization"])

	srv.Relay.fail(errors.New("boom"))
	err = client.SendContact(ctx, portalsdk.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "again"})
	apiErr = requireAPIError(t, err, http.StatusBadGateway, portalsdk.ErrorCodeRelayFailed)
	require.Equal(t, ContactFailedMessage, apiErr.Description)
}

func TestArticleRedirect(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	client := portalsdk.NewClient(srv.URL)

	article, ok := domain.LookupArticle("ai-cdfis-part-2")
	require.True(t, ok)

	location, err := client.ArticleURL(ctx, "ai-cdfis-part-2")
	require.NoError(t, err)
	require.Equal(t, article.ExternalURL, location)

	_, err = client.ArticleURL(ctx, "missing")
	requireAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
}
