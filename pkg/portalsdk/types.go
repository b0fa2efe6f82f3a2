package portalsdk

import "time"

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every failing request.
type ErrorResponse struct {
	// Error is a machine readable code (e.g. "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is the message shown to the visitor
	ErrorDescription string `json:"error_description"`

	// Details holds per-field messages for validation_error
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is only filled by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// Client gate
// ============================================================================

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	FullName        string `json:"fullName"`
	Organization    string `json:"organization"`
	InvitationCode  string `json:"invitationCode"`
}

// RegisterResponse carries the created account. The caller is not logged in.
type RegisterResponse struct {
	Message string  `json:"message"`
	Account Account `json:"account"`
}

// SessionResponse describes the browser session's login state.
type SessionResponse struct {
	LoggedIn     bool   `json:"loggedIn"`
	Username     string `json:"username,omitempty"`
	FullName     string `json:"fullName,omitempty"`
	Organization string `json:"organization,omitempty"`
}

type InvitationValidityResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// ============================================================================
// Admin
// ============================================================================

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type CreateInvitationRequest struct {
	// Prefix defaults to "CIF-"
	Prefix string `json:"prefix,omitempty"`
}

type InvitationCode struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
	Expired   bool      `json:"expired"`
}

type InvitationCodeList struct {
	Codes []InvitationCode `json:"codes"`
}

type CreateAccountRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	Organization string `json:"organization"`
}

// Account never includes the password.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Organization string    `json:"organization"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AccountList struct {
	Accounts []Account `json:"accounts"`
}

type GeneratedPasswordResponse struct {
	Password string `json:"password"`
}

// ============================================================================
// Chat
// ============================================================================

type ChatAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

type ChatMessage struct {
	Type    string       `json:"type"`
	Text    string       `json:"text"`
	Actions []ChatAction `json:"actions,omitempty"`
}

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Conversation is a snapshot of one chat.
type Conversation struct {
	ID                string            `json:"id"`
	State             string            `json:"state"`
	Category          string            `json:"category,omitempty"`
	ShowExamples      bool              `json:"showExamples"`
	ShowContactForm   bool              `json:"showContactForm"`
	ContactForm       ContactForm       `json:"contactForm"`
	ContactFormErrors map[string]string `json:"contactFormErrors,omitempty"`
	Messages          []ChatMessage     `json:"messages"`
	ExampleQuestions  []string          `json:"exampleQuestions,omitempty"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type AskExampleRequest struct {
	Question string `json:"question"`
}

type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// ============================================================================
// Contact page
// ============================================================================

type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
	Service      string `json:"service,omitempty"`
	Message      string `json:"message"`
}

type ContactResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Client area
// ============================================================================

type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Label       string `json:"label"`
}

type ClientResourcesResponse struct {
	Username     string     `json:"username"`
	FullName     string     `json:"fullName"`
	Organization string     `json:"organization"`
	Resources    []Resource `json:"resources"`
}
