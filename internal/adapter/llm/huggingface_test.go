package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizly/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type inferenceRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters map[string]interface{} `json:"parameters"`
}

func newInferenceServer(t *testing.T, status int, reply func(prompt string) interface{}) (*httptest.Server, *[]inferenceRequest) {
	t.Helper()
	var received []inferenceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-org/test-model", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req inferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received = append(received, req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":"Model is overloaded"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(reply(req.Inputs))
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func generations(text string) interface{} {
	return []map[string]string{{"generated_text": text}}
}

func testConfig(url string) config.LLMConfig {
	return config.LLMConfig{APIKey: "hf_test", ModelName: "test-org/test-model", BaseURL: url}
}

func TestNewHuggingFaceLLM(t *testing.T) {
	client, err := NewHuggingFaceLLM(testConfig(""))
	assert.NoError(t, err)
	assert.Equal(t, DefaultInferenceURL, client.url)

	_, err = NewHuggingFaceLLM(config.LLMConfig{ModelName: "m"})
	assert.ErrorContains(t, err, "API key cannot be empty")

	_, err = NewHuggingFaceLLM(config.LLMConfig{APIKey: "k"})
	assert.ErrorContains(t, err, "model name cannot be empty")
}

func TestHuggingFaceLLM_SendsGenerationParameters(t *testing.T) {
	server, received := newInferenceServer(t, http.StatusOK, func(string) interface{} {
		return generations(`{"questions":[]}`)
	})

	client, err := NewHuggingFaceLLM(testConfig(server.URL + "/"))
	require.NoError(t, err)

	out, err := client.Call(context.Background(), "Generate a quiz", llms.WithTemperature(0.7), llms.WithMaxTokens(1024))
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, out)

	require.Len(t, *received, 1)
	params := (*received)[0].Parameters
	assert.Equal(t, "Generate a quiz", (*received)[0].Inputs)
	assert.InDelta(t, 0.7, params["temperature"], 1e-9)
	assert.InDelta(t, 1024, params["max_new_tokens"], 1e-9)
	assert.Equal(t, false, params["return_full_text"])
	assert.NotContains(t, params, "max_length")
}

func TestHuggingFaceLLM_StripsEchoedPrompt(t *testing.T) {
	server, _ := newInferenceServer(t, http.StatusOK, func(prompt string) interface{} {
		return generations(prompt + `{"questions":[]}`)
	})

	client, err := NewHuggingFaceLLM(testConfig(server.URL))
	require.NoError(t, err)

	out, err := llms.GenerateFromSinglePrompt(context.Background(), client, "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, out)
}

func TestHuggingFaceLLM_ObjectResponse(t *testing.T) {
	server, _ := newInferenceServer(t, http.StatusOK, func(string) interface{} {
		return map[string]string{"generated_text": `{"questions":[]}`}
	})

	client, err := NewHuggingFaceLLM(testConfig(server.URL))
	require.NoError(t, err)

	out, err := client.Call(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, out)
}

func TestHuggingFaceLLM_EmptyGenerations(t *testing.T) {
	server, _ := newInferenceServer(t, http.StatusOK, func(string) interface{} {
		return []map[string]string{}
	})

	client, err := NewHuggingFaceLLM(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "prompt")
	assert.ErrorContains(t, err, "no generations")
}

func TestHuggingFaceLLM_UpstreamError(t *testing.T) {
	server, _ := newInferenceServer(t, http.StatusServiceUnavailable, nil)

	client, err := NewHuggingFaceLLM(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatusCode)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "Model is overloaded")
}

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestHuggingFaceLLM_WithHTTPClient(t *testing.T) {
	client, err := NewHuggingFaceLLM(testConfig("http://inference.invalid"))
	require.NoError(t, err)

	_, err = client.WithHTTPClient(failingDoer{}).Call(context.Background(), "prompt")
	assert.ErrorContains(t, err, "connection refused")
}

func TestHuggingFaceLLM_EmptyMessages(t *testing.T) {
	client, err := NewHuggingFaceLLM(testConfig(""))
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), nil)
	assert.Error(t, err)
}
