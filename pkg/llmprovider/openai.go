package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// Default endpoints for the OpenAI-compatible providers.
const (
	DefaultOpenAIBaseURL   = "https://api.openai.com/v1/"
	DefaultDeepSeekBaseURL = "https://api.deepseek.com/v1/"
	DefaultQwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1/"

	toolChoiceRequired = "required"
)

// OpenAIConfig configures an OpenAI-compatible chat completions provider.
type OpenAIConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIAdapter serves every provider speaking the OpenAI chat completions API
// (OpenAI itself, DeepSeek, Qwen compatible mode).
type OpenAIAdapter struct {
	client openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates an adapter. SDK retries are disabled because the
// Manager owns retry policy.
func NewOpenAIAdapter(cfg OpenAIConfig) (*OpenAIAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: api key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%s: model is required", cfg.Name)
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAIAdapter{
		client: openai.NewClient(opts...),
		name:   cfg.Name,
		model:  cfg.Model,
	}, nil
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: convertToOpenAIMessages(req),
	}
	if len(req.Tools) > 0 {
		params.Tools = convertToOpenAITools(req.Tools)
		if req.RequireTool {
			params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
				OfAuto: openai.String(toolChoiceRequired),
			}
		}
	}
	params.Temperature = openai.Float(req.Temperature)
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", a.name, ErrEmptyResponse)
	}

	msg := completion.Choices[0].Message
	parts := []Part{}
	if msg.Content != "" {
		parts = append(parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		if tc.Function.Name == "" {
			continue
		}
		parts = append(parts, Part{FunctionCall: &FunctionCall{
			Name:    tc.Function.Name,
			Args:    decodeToolArgs(tc.Function.Arguments),
			RawArgs: tc.Function.Arguments,
		}})
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		FinishReason: string(completion.Choices[0].FinishReason),
		ProviderName: a.name,
		ModelName:    completion.Model,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		if text := joinText(req.SystemInstruction.Parts); text != "" {
			msgs = append(msgs, openai.SystemMessage(text))
		}
	}
	for _, m := range req.Messages {
		text := joinText(m.Parts)
		switch m.Role {
		case "system":
			msgs = append(msgs, openai.SystemMessage(text))
		case "assistant", geminiRoleModel:
			msgs = append(msgs, openai.AssistantMessage(text))
		default:
			msgs = append(msgs, openai.UserMessage(text))
		}
	}
	return msgs
}

func convertToOpenAITools(tools []Tool) []openai.ChatCompletionToolUnionParam {
	out := make([]openai.ChatCompletionToolUnionParam, len(tools))
	for i, t := range tools {
		out[i] = openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        t.Name,
			Description: openai.String(t.Description),
			Parameters:  shared.FunctionParameters(t.Parameters),
		})
	}
	return out
}

func joinText(parts []Part) string {
	var texts []string
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// decodeToolArgs returns nil when the arguments are not a JSON object.
// RawArgs still carries the original text for callers that parse it themselves.
func decodeToolArgs(raw string) map[string]interface{} {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil
	}
	return args
}
