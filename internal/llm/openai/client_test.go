package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobforge-backend/internal/llm"
	"jobforge-backend/internal/llm/openai"
)

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := openai.NewClient("", "https://api.openai.com/v1", "gpt-4o-mini", time.Minute)
		assert.Error(t, err)
	})

	t.Run("requires model", func(t *testing.T) {
		_, err := openai.NewClient("sk-test", "https://api.openai.com/v1", "", time.Minute)
		assert.Error(t, err)
	})
}

func TestComplete(t *testing.T) {
	t.Run("success with usage", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotBody)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":    "chatcmpl-1",
				"model": "gpt-4o-mini",
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "Dear Hiring Manager,"}},
				},
				"usage": map[string]int{
					"prompt_tokens":     120,
					"completion_tokens": 80,
					"total_tokens":      200,
				},
			})
		}))
		defer server.Close()

		client, err := openai.NewClient("sk-test", server.URL, "gpt-4o-mini", time.Minute)
		require.NoError(t, err)

		result, err := client.Complete(context.Background(), []llm.Message{
			{Role: "system", Content: "You write cover letters."},
			{Role: "user", Content: "Write one."},
		}, false, 0.5)

		require.NoError(t, err)
		assert.Equal(t, "Dear Hiring Manager,", result.Content)
		assert.Equal(t, "gpt-4o-mini", result.Model)
		require.NotNil(t, result.PromptTokens)
		assert.Equal(t, 120, *result.PromptTokens)
		require.NotNil(t, result.CompletionTokens)
		assert.Equal(t, 80, *result.CompletionTokens)

		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "gpt-4o-mini", gotBody["model"])
		assert.NotContains(t, gotBody, "response_format")
	})

	t.Run("json mode sets response format", func(t *testing.T) {
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"model": "gpt-4o-mini",
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": `{"summary":"ok"}`}},
				},
			})
		}))
		defer server.Close()

		client, err := openai.NewClient("sk-test", server.URL, "gpt-4o-mini", time.Minute)
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), []llm.Message{{Role: "user", Content: "go"}}, true, 0.2)
		require.NoError(t, err)

		format, ok := gotBody["response_format"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "json_object", format["type"])
	})

	t.Run("api error object", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"message": "Incorrect API key provided", "type": "invalid_request_error"},
			})
		}))
		defer server.Close()

		client, err := openai.NewClient("sk-bad", server.URL, "gpt-4o-mini", time.Minute)
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), []llm.Message{{Role: "user", Content: "go"}}, false, 0.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"model": "gpt-4o-mini", "choices": []interface{}{}})
		}))
		defer server.Close()

		client, err := openai.NewClient("sk-test", server.URL, "gpt-4o-mini", time.Minute)
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), []llm.Message{{Role: "user", Content: "go"}}, false, 0.5)
		assert.Error(t, err)
	})

	t.Run("non-json reply", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream gateway error"))
		}))
		defer server.Close()

		client, err := openai.NewClient("sk-test", server.URL, "gpt-4o-mini", time.Minute)
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), []llm.Message{{Role: "user", Content: "go"}}, false, 0.5)
		assert.Error(t, err)
	})
}
