package openaiclient

import (
	"context"
	"net/http"
	"time"

	openaidomain "github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/domain"
	"github.com/melsayed/sales-analyst-api/internal/config"
)

type Client interface {
	CreateChatCompletion(ctx context.Context, request openaidomain.ChatRequest) (*openaidomain.ChatResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}
