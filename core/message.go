package core

// Conversation roles recognized by model adapters.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message holds one role-tagged piece of plain text handed to a model. Panel
// discussions exchange text only, so no richer content polymorphism is
// needed.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// NewUserMessage creates a user-authored text message.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// NewAssistantMessage creates an assistant-authored text message.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text}
}
