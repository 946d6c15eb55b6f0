package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"

	openaidomain "github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/domain"
)

func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, request openaidomain.ChatRequest) (*openaidomain.ChatResponse, error) {
	endpoint, err := url.Parse(c.config.OpenAI.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/chat/completions")

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiError openaidomain.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiError); decodeErr == nil && apiError.Error != nil {
			return nil, fmt.Errorf("completion request failed with status %s: %s", resp.Status, apiError.Error.Message)
		}
		return nil, fmt.Errorf("completion request failed with status: %s", resp.Status)
	}

	var response openaidomain.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &response, nil
}
