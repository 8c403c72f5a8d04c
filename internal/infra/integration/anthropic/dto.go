package anthropic

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CreateMessageInput struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type MessageOutput struct {
	Text  string
	Usage *Usage
}

// --- payloads: the messages API wire format ---

type createMessageRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type createMessageResponse struct {
	Content []contentBlock `json:"content"`
	Usage   *Usage         `json:"usage"`
}
