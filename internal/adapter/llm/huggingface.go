package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quizly/internal/config"

	"github.com/google/wire"
	"github.com/tmc/langchaingo/llms"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ProviderSet = wire.NewSet(
	NewHuggingFaceLLM,
	wire.Bind(new(llms.Model), new(*HuggingFaceLLM)),
)

const DefaultInferenceURL = "https://api-inference.huggingface.co"

var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HuggingFaceLLM is an llms.Model backed by the Hugging Face text-generation
// inference API. MaxTokens from the call options is sent as max_new_tokens.
type HuggingFaceLLM struct {
	token  string
	model  string
	url    string
	client Doer
}

var _ llms.Model = (*HuggingFaceLLM)(nil)

// NewHuggingFaceLLM creates the client handle shared by every request.
func NewHuggingFaceLLM(cfg config.LLMConfig) (*HuggingFaceLLM, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Hugging Face API key cannot be empty")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("Hugging Face model name cannot be empty")
	}

	url := DefaultInferenceURL
	if cfg.BaseURL != "" {
		url = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &HuggingFaceLLM{
		token:  cfg.APIKey,
		model:  cfg.ModelName,
		url:    url,
		client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}, nil
}

// WithHTTPClient replaces the instrumented default client.
func (h *HuggingFaceLLM) WithHTTPClient(client Doer) *HuggingFaceLLM {
	h.client = client
	return h
}

type generationParameters struct {
	MaxNewTokens      int      `json:"max_new_tokens,omitempty"`
	Temperature       float64  `json:"temperature,omitempty"`
	TopP              float64  `json:"top_p,omitempty"`
	TopK              int      `json:"top_k,omitempty"`
	RepetitionPenalty float64  `json:"repetition_penalty,omitempty"`
	Seed              int      `json:"seed,omitempty"`
	Stop              []string `json:"stop,omitempty"`
	ReturnFullText    bool     `json:"return_full_text"`
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationResult struct {
	GeneratedText string `json:"generated_text"`
}

// GenerateContent implements llms.Model. Text parts of all messages are joined
// into a single prompt.
func (h *HuggingFaceLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	prompt := promptText(messages)
	if prompt == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	model := h.model
	if opts.Model != "" {
		model = opts.Model
	}

	text, err := h.generate(ctx, model, generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens:      opts.MaxTokens,
			Temperature:       opts.Temperature,
			TopP:              opts.TopP,
			TopK:              opts.TopK,
			RepetitionPenalty: opts.RepetitionPenalty,
			Seed:              opts.Seed,
			Stop:              opts.StopWords,
		},
	})
	if err != nil {
		return nil, err
	}

	// Endpoints that ignore return_full_text echo the prompt.
	text = strings.TrimPrefix(text, prompt)
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}, nil
}

// Call implements llms.Model.
func (h *HuggingFaceLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, h, prompt, options...)
}

func (h *HuggingFaceLLM) generate(ctx context.Context, model string, payload generationRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/models/%s", h.url, model), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if len(data) > 0 {
			return "", fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatusCode, resp.StatusCode, string(data))
		}
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// The serverless API answers with a list, dedicated endpoints with an object.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var result generationResult
		if err := json.Unmarshal(trimmed, &result); err != nil {
			return "", fmt.Errorf("failed to decode inference response: %w", err)
		}
		return result.GeneratedText, nil
	}
	var results []generationResult
	if err := json.Unmarshal(trimmed, &results); err != nil {
		return "", fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("inference response contained no generations")
	}
	return results[0].GeneratedText, nil
}

func promptText(messages []llms.MessageContent) string {
	var parts []string
	for _, m := range messages {
		for _, p := range m.Parts {
			if t, ok := p.(llms.TextContent); ok && t.Text != "" {
				parts = append(parts, t.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}
