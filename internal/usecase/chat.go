package usecase

import (
	"context"
	"log"

	"github.com/novaclaw/agency-api/internal/infra/integration/anthropic"
)

// Fixed persona for the website chat widget. Not caller-controlled.
const chatSystemPrompt = `You are NovaClaw AI, an autonomous marketing intelligence assistant. You help users understand and leverage AI-powered marketing automation.

Key capabilities you can explain:
1. **Autonomous Content Loop**: AI agents that research trends, generate multi-modal content, and distribute across platforms 24/7
2. **Lead Intelligence**: Automatic lead capture, scoring, and personalized outreach sequences
3. **Multi-Platform Distribution**: Automated posting to LinkedIn, Instagram, Twitter, and blogs
4. **Quality Control**: Critic-agent system that reviews content for quality and compliance before publication
5. **Analytics & Optimization**: Real-time performance tracking and autonomous optimization

Keep responses concise, helpful, and focused on the user's question. Use a professional but friendly tone. If asked about pricing or specific features not mentioned, suggest they sign up for early access to learn more.`

// Generation bounds are fixed server-side.
const (
	chatMaxTokens   = 500
	chatTemperature = 0.7
)

const (
	OfflineChatMessage  = "I'm currently in demo mode. Sign up for early access to interact with the full NovaClaw AI system!"
	FallbackChatMessage = "I'm having trouble connecting right now. Please try again in a moment."
)

// ChatUseCase forwards one bounded conversation to the completion provider.
// The widget must never visibly break: with no provider configured it answers
// with the demo message, and a provider failure degrades to an apology.
type ChatUseCase struct {
	Completer ChatCompleterInterface
}

func NewChatUseCase(completer ChatCompleterInterface) *ChatUseCase {
	return &ChatUseCase{Completer: completer}
}

func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) *ChatOutput {
	if uc.Completer == nil {
		return &ChatOutput{
			Message: OfflineChatMessage,
			Outcome: ChatOutcomeOffline,
		}
	}

	messages := make([]anthropic.Message, len(input.Messages))
	for i, m := range input.Messages {
		messages[i] = anthropic.Message{Role: m.Role, Content: m.Content}
	}

	reply, err := uc.Completer.CreateMessage(ctx, anthropic.CreateMessageInput{
		System:      chatSystemPrompt,
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		log.Printf("⚠️ Chat completion failed: %v", err)
		return &ChatOutput{
			Message: FallbackChatMessage,
			Outcome: ChatOutcomeFallback,
		}
	}

	out := &ChatOutput{
		Message: reply.Text,
		Outcome: ChatOutcomeCompleted,
	}
	if reply.Usage != nil {
		out.Usage = &ChatUsage{
			InputTokens:  reply.Usage.InputTokens,
			OutputTokens: reply.Usage.OutputTokens,
		}
	}

	return out
}
