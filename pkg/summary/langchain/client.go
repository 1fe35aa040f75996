// Package langchain provides a summary.Client on top of langchaingo models.
package langchain

import (
	"context"
	"fmt"
	"homefinder/pkg/domain"
	"homefinder/pkg/serrors"
	"homefinder/pkg/summary"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"

	// DefaultModel is used when Options.Model is empty.
	DefaultModel = "gpt-4o-mini"
)

// Options select and configure the backing model.
type Options struct {
	// Provider is ProviderOpenAI or ProviderOllama.
	Provider string
	// BaseURL overrides the provider endpoint, empty for the default.
	BaseURL string
	APIKey  string
	Model   string
}

// Client sends one system and one human message per call and returns the
// first choice. It is safe for concurrent use.
type Client struct {
	llm llms.Model
}

// Ensure Client conforms to the summary.Client interface at compile time.
var _ summary.Client = (*Client)(nil)

// New wraps an existing langchaingo model.
func New(llm llms.Model) *Client {
	return &Client{llm: llm}
}

// NewFromOptions builds the model described by opts using httpClient for
// transport.
func NewFromOptions(httpClient *http.Client, opts Options) (*Client, error) {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	switch strings.ToLower(opts.Provider) {
	case "", ProviderOpenAI:
		o := []openai.Option{
			openai.WithToken(opts.APIKey),
			openai.WithModel(model),
			openai.WithHTTPClient(httpClient),
		}
		if opts.BaseURL != "" {
			o = append(o, openai.WithBaseURL(opts.BaseURL))
		}
		l, err := openai.New(o...)
		if err != nil {
			return nil, fmt.Errorf("could not init openai: %w", err)
		}

		return New(l), nil
	case ProviderOllama:
		o := []ollama.Option{
			ollama.WithModel(model),
			ollama.WithHTTPClient(httpClient),
		}
		if opts.BaseURL != "" {
			o = append(o, ollama.WithServerURL(opts.BaseURL))
		}
		l, err := ollama.New(o...)
		if err != nil {
			return nil, fmt.Errorf("could not init ollama: %w", err)
		}

		return New(l), nil
	default:
		return nil, serrors.With(serrors.ErrMisconfigured, "unknown llm provider %q", opts.Provider)
	}
}

// Summarize builds the analysis prompt and returns the model's first answer
// verbatim. No retries are attempted.
func (c *Client) Summarize(ctx context.Context,
	results []domain.SearchResultItem,
	req domain.HouseholdRequirement) (string, error) {
	prompt, err := summary.BuildPrompt(results, req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrLanguageModel, err, "could not build prompt")
	}

	resp, err := c.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, summary.SystemRole),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		return "", serrors.Wrap(serrors.ErrLanguageModel, err, "could not generate content")
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", serrors.With(serrors.ErrLanguageModel, "model returned no choices")
	}

	return resp.Choices[0].Content, nil
}
