package openai

import (
	"context"
	"errors"
	"strings"

	openaidomain "github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/domain"
	"github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/openaiclient"
	"github.com/melsayed/sales-analyst-api/internal/config"
)

type Integrator interface {
	GenerateSQL(ctx context.Context, question string) (string, error)
	FixSQL(ctx context.Context, question, failedSQL, dbError string) (string, error)
	Narrate(ctx context.Context, question, digest string) (string, error)
	Enabled() bool
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) Integrator {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OpenAIService) Enabled() bool {
	return s.cfg.OpenAI.Enabled && s.cfg.OpenAI.APIKey != ""
}

func (s *OpenAIService) GenerateSQL(ctx context.Context, question string) (string, error) {
	messages := []openaidomain.ChatMessage{
		{Role: openaidomain.RoleSystem, Content: sqlGeneratorPrompt},
		{Role: openaidomain.RoleUser, Content: question},
	}

	content, err := s.complete(ctx, messages)
	if err != nil {
		return "", err
	}

	return stripFences(content), nil
}

// FixSQL replays the failed attempt as conversation history so the model can
// self-correct against the database error.
func (s *OpenAIService) FixSQL(ctx context.Context, question, failedSQL, dbError string) (string, error) {
	messages := []openaidomain.ChatMessage{
		{Role: openaidomain.RoleSystem, Content: sqlGeneratorPrompt},
		{Role: openaidomain.RoleUser, Content: question},
		{Role: openaidomain.RoleAssistant, Content: failedSQL},
		{Role: openaidomain.RoleUser, Content: sqlFixRequest(failedSQL, dbError)},
	}

	content, err := s.complete(ctx, messages)
	if err != nil {
		return "", err
	}

	return stripFences(content), nil
}

func (s *OpenAIService) Narrate(ctx context.Context, question, digest string) (string, error) {
	messages := []openaidomain.ChatMessage{
		{Role: openaidomain.RoleSystem, Content: analystPrompt},
		{Role: openaidomain.RoleUser, Content: narrateRequest(question, digest)},
	}

	return s.complete(ctx, messages)
}

func (s *OpenAIService) complete(ctx context.Context, messages []openaidomain.ChatMessage) (string, error) {
	request := openaidomain.ChatRequest{
		Model:       s.cfg.OpenAI.Model,
		Messages:    messages,
		Temperature: s.cfg.OpenAI.Temperature,
		MaxTokens:   s.cfg.OpenAI.MaxTokens,
	}

	response, err := s.Client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// stripFences removes the markdown code fences models add despite being told
// not to.
func stripFences(sql string) string {
	sql = strings.ReplaceAll(sql, "```sql", "")
	sql = strings.ReplaceAll(sql, "```", "")
	return strings.TrimSpace(sql)
}
