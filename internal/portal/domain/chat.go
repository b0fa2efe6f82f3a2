package domain

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ActionContactUs opens the contact form from a bot message.
const ActionContactUs = "contact_us"

// ChatAction is a button attached to a bot message.
type ChatAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// ChatMessage is one transcript entry.
type ChatMessage struct {
	Type    Sender       `json:"type"`
	Text    string       `json:"text"`
	Actions []ChatAction `json:"actions,omitempty"`
}

func UserMessage(text string) ChatMessage { return ChatMessage{Type: SenderUser, Text: text} }
func BotMessage(text string) ChatMessage  { return ChatMessage{Type: SenderBot, Text: text} }
