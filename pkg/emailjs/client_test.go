package emailjs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clarityimpactfinance/portal/pkg/emailjs"
	"github.com/stretchr/testify/require"
)

func TestSendPostsTemplatePayload(t *testing.T) {
	var got emailjs.SendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := emailjs.NewClient(srv.URL+"/", "public-key", "")
	err := client.Send(context.Background(), "service_x", "template_y", map[string]string{
		"from_name": "Ada",
		"message":   "Hello",
	})
	require.NoError(t, err)

	require.Equal(t, "service_x", got.ServiceID)
	require.Equal(t, "template_y", got.TemplateID)
	require.Equal(t, "public-key", got.UserID)
	require.Empty(t, got.AccessToken)
	require.Equal(t, "Ada", got.TemplateParams["from_name"])
}

func TestSendSurfacesServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid\n"))
	}))
	defer srv.Close()

	err := emailjs.NewClient(srv.URL, "public-key", "secret").Send(context.Background(), "s", "t", nil)

	var apiErr *emailjs.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "The template ID is invalid", apiErr.Body)
}

func TestSendHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emailjs.NewClient(srv.URL, "k", "").Send(ctx, "s", "t", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	require.Equal(t, emailjs.DefaultBaseURL, emailjs.NewClient("", "k", "").BaseURL)
}
