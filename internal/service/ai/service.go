package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/oakfield/london-property-agent/backend/internal/config"
	"github.com/oakfield/london-property-agent/backend/internal/model/lead"
)

// Service relays a conversation transcript to the hosted chat model and
// returns its raw reply text.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the chat model and compiles the prompt chain.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// Reply sends the caller-supplied history plus the new message through the
// chain and returns the model's text. The configured timeout bounds the
// whole invocation; any failure is fatal for the request.
func (s *Service) Reply(ctx context.Context, history []lead.Turn, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	input := map[string]any{
		"system":  AgentSystemPrompt,
		"history": toSchemaMessages(history),
		"query":   message,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	log.Printf("[ai] generated reply, history=%d length=%d", len(history), len(response.Content))
	return response.Content, nil
}

func toSchemaMessages(history []lead.Turn) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case lead.RoleUser:
			messages = append(messages, schema.UserMessage(turn.Content))
		case lead.RoleModel:
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		}
	}
	return messages
}
