package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageModePersistent = "persistent"
	StorageModeEphemeral  = "ephemeral"
)

type Config struct {
	StorageMode     string        // Optional: persistent (sqlite) or ephemeral (memory) (default: persistent)
	DatabaseFile    string        // Optional: path to SQLite database file (default: ./portal.db)
	AdminPassword   string        // Optional: admin panel password (default: admin123)
	SessionKeyFile  string        // Optional: Ed25519 PEM used to sign cookies, generated when missing
	MasterKey       string        // Optional: seals the session key file at rest (AES-256-GCM)
	SessionTTL      time.Duration // Optional: browser session lifetime (default: 30 days)
	Issuer          string        // Optional: issuer claim of the signed cookies (default: clarity-portal)
	SecureCookies   bool          // Optional: mark cookies Secure (default: true outside dev)
	GateLatency     time.Duration // Optional: simulated login/register round trip (default: 1s)
	ChatLatency     time.Duration // Optional: simulated IRIS typing delay (default: 800ms)
	GreetingLatency time.Duration // Optional: delay before a topic greeting (default: 100ms)
	InvitationTTL   time.Duration // Optional: lifetime of new invitation codes (default: 30 days)
	CORSOrigins     []string      // Optional: origins allowed to call the API with credentials

	EmailJSBaseURL     string // Optional: EmailJS API base (default: https://api.emailjs.com)
	EmailJSServiceID   string
	EmailJSTemplateID  string
	EmailJSPublicKey   string
	EmailJSAccessToken string // Optional: private key for strict mode
	EmailJSDryRun      bool   // Optional: log contact messages instead of sending them
	ContactRecipient   string // Optional: inbox receiving inquiries

	OpenAIAPIKey string // Read but unused while the FAQ matcher is rule based

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	ChatIdleTimeout      time.Duration // Conversations idle longer than this are evicted (default: 2h)
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	env := getEnvOrDefault("ENV", "dev")

	cfg := Config{
		StorageMode:     getEnvOrDefault("PORTAL_STORAGE_MODE", StorageModePersistent),
		DatabaseFile:    getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		AdminPassword:   getEnvOrDefault("PORTAL_ADMIN_PASSWORD", "admin123"),
		SessionKeyFile:  os.Getenv("PORTAL_SESSION_KEY_FILE"),
		MasterKey:       os.Getenv("PORTAL_MASTER_KEY"),
		SessionTTL:      getEnvDurationOrDefault("PORTAL_SESSION_TTL", 30*24*time.Hour),
		Issuer:          getEnvOrDefault("PORTAL_ISSUER", "clarity-portal"),
		SecureCookies:   getEnvBoolOrDefault("PORTAL_SECURE_COOKIES", env != "dev"),
		GateLatency:     getEnvDurationOrDefault("PORTAL_GATE_LATENCY", 1*time.Second),
		ChatLatency:     getEnvDurationOrDefault("PORTAL_CHAT_LATENCY", 800*time.Millisecond),
		GreetingLatency: getEnvDurationOrDefault("PORTAL_GREETING_LATENCY", 100*time.Millisecond),
		InvitationTTL:   getEnvDurationOrDefault("PORTAL_INVITE_TTL", 30*24*time.Hour),
		CORSOrigins:     splitList(os.Getenv("PORTAL_CORS_ORIGINS")),

		EmailJSBaseURL:     getEnvOrDefault("EMAILJS_BASE_URL", "https://api.emailjs.com"),
		EmailJSServiceID:   os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID:  os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:   os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailJSAccessToken: os.Getenv("EMAILJS_ACCESS_TOKEN"),
		EmailJSDryRun:      getEnvBoolOrDefault("EMAILJS_DRY_RUN", false),
		ContactRecipient:   getEnvOrDefault("CONTACT_RECIPIENT_EMAIL", "amir@clarityimpactfinance.com"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		Env:                  env,
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		ChatIdleTimeout:      getEnvDurationOrDefault("CHAT_IDLE_TIMEOUT", 2*time.Hour),
	}

	// Without EmailJS credentials nothing could be delivered anyway
	if cfg.EmailJSServiceID == "" || cfg.EmailJSTemplateID == "" || cfg.EmailJSPublicKey == "" {
		cfg.EmailJSDryRun = true
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
