package openaiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openaidomain "github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/domain"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			BaseURL:        baseURL,
			APIKey:         "test-key",
			Model:          "gpt-4o",
			TimeoutSeconds: 5,
		},
	}
}

func TestCreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var request openaidomain.ChatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "gpt-4o", request.Model)
		assert.Len(t, request.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaidomain.ChatResponse{
			ID:    "chatcmpl-123",
			Model: "gpt-4o",
			Choices: []openaidomain.ChatChoice{
				{Message: openaidomain.ChatMessage{Role: openaidomain.RoleAssistant, Content: "SELECT 1"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL + "/v1"))

	response, err := client.CreateChatCompletion(context.Background(), openaidomain.ChatRequest{
		Model: "gpt-4o",
		Messages: []openaidomain.ChatMessage{
			{Role: openaidomain.RoleSystem, Content: "You write SQL."},
			{Role: openaidomain.RoleUser, Content: "total sales 2025"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, response.Choices, 1)
	assert.Equal(t, "SELECT 1", response.Choices[0].Message.Content)
}

func TestCreateChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(openaidomain.ErrorResponse{
			Error: &openaidomain.ErrorDetail{
				Message: "Incorrect API key provided",
				Type:    "invalid_request_error",
			},
		})
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.CreateChatCompletion(context.Background(), openaidomain.ChatRequest{Model: "gpt-4o"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestCreateChatCompletionNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))

	_, err := client.CreateChatCompletion(context.Background(), openaidomain.ChatRequest{Model: "gpt-4o"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
