package anthropic

// MessagesRequest is the top-level request body for the Anthropic Messages API.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Tools     []Tool    `json:"tools,omitempty"`
	Messages  []Message `json:"messages"`
}

// Tool declares a function the model may request, with a JSON-schema input contract.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// Message is one turn of the conversation transcript.
type Message struct {
	Role    string         `json:"role"` // "user" or "assistant"
	Content []ContentBlock `json:"content"`
}

// ContentBlock holds one piece of a message: text, a tool_use request from the
// model, or a tool_result fed back by the caller.
type ContentBlock struct {
	Type string `json:"type"` // "text", "tool_use", "tool_result"

	// text
	Text string `json:"text,omitempty"`

	// tool_use
	ID    string                 `json:"id,omitempty"`
	Name  string                 `json:"name,omitempty"`
	Input map[string]interface{} `json:"input,omitempty"`

	// tool_result
	ToolUseID string `json:"tool_use_id,omitempty"`
	Content   string `json:"content,omitempty"`
	IsError   bool   `json:"is_error,omitempty"`
}

// MessagesResponse is the top-level response body from the Messages API.
type MessagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Role       string         `json:"role"`
	StopReason string         `json:"stop_reason"` // "end_turn", "tool_use", "max_tokens"
	Content    []ContentBlock `json:"content"`
	Usage      *Usage         `json:"usage,omitempty"`
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// apiError is the error envelope returned by the Anthropic API.
type apiError struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewTextMessage builds a single-text-block message for the given role.
func NewTextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// HasToolUse reports whether the response requests at least one tool invocation.
func (r *MessagesResponse) HasToolUse() bool {
	return r.StopReason == "tool_use"
}

// TextContent concatenates all text blocks of the response.
func (r *MessagesResponse) TextContent() string {
	var out string
	for _, block := range r.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}

// ToolUses returns the tool_use blocks of the response in request order.
func (r *MessagesResponse) ToolUses() []ContentBlock {
	var uses []ContentBlock
	for _, block := range r.Content {
		if block.Type == "tool_use" {
			uses = append(uses, block)
		}
	}
	return uses
}
