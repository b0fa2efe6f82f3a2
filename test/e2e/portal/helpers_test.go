package portal_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for portal end-to-end tests.
 * This includes container setup and assertions.
 */

const (
	testImageName = "clarity-portal-test:latest"

	adminPassword = "e2e-admin-password"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Portal Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Portal Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/portal/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupPortalContainer starts the portal in a container and returns the base URL.
func setupPortalContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"PORTAL_ADMIN_PASSWORD":   adminPassword,
			"PORTAL_DATABASE_FILE":    "/tmp/portal.db",
			"PORTAL_SESSION_KEY_FILE": "/tmp/session.pem",
			"EMAILJS_DRY_RUN":         "true",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// Simulated latencies would only slow the suite down
			"PORTAL_GATE_LATENCY":     "0s",
			"PORTAL_CHAT_LATENCY":     "0s",
			"PORTAL_GREETING_LATENCY": "0s",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// adminClient returns a client holding a valid admin cookie.
func adminClient(t *testing.T, baseURL string) *portalsdk.Client {
	t.Helper()
	client := portalsdk.NewClient(baseURL)
	require.NoError(t, client.AdminLogin(t.Context(), adminPassword))
	return client
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *portalsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks the status and machine readable code of a failure.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *portalsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertRedirectedToLogin checks that the client area bounced the visitor.
func assertRedirectedToLogin(t *testing.T, err error) {
	t.Helper()
	var redirect *portalsdk.RedirectError
	require.True(t, errors.As(err, &redirect), "expected a redirect, got: %v", err)
	require.Equal(t, "/login", redirect.Location)
}
