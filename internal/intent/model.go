package intent

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"chat-commerce/pkg/llmprovider"
	"chat-commerce/pkg/log"
)

// Generator is the model backend; *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ModelProvider classifies with a language model through the set_intent tool.
type ModelProvider struct {
	llm         Generator
	l           log.Logger
	temperature float64
}

var _ Provider = (*ModelProvider)(nil)

// NewModelProvider creates a model backed classifier.
func NewModelProvider(llm Generator, l log.Logger, temperature float64) *ModelProvider {
	return &ModelProvider{llm: llm, l: l, temperature: temperature}
}

func (p *ModelProvider) Name() string { return ProviderModel }

// Classify asks the model for a set_intent call. Transport errors are returned
// as is; missing or malformed output is ErrDeclined.
func (p *ModelProvider) Classify(ctx context.Context, message string, c Context) (Result, error) {
	resp, err := p.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: PromptSystem}}},
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage("user", buildUserContent(message, c))},
		Tools: []llmprovider.Tool{{
			Name:        ToolSetIntent,
			Description: ToolSetIntentDescription,
			Parameters:  setIntentSchema(),
		}},
		RequireTool: true,
		Temperature: p.temperature,
		MaxTokens:   ModelMaxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", LogPrefixModelClassify, err)
	}
	if resp == nil {
		return Result{}, ErrDeclined
	}

	raw, ok := extractArguments(resp.Content)
	if !ok {
		return Result{}, ErrDeclined
	}

	res, err := parseArguments(raw)
	if err != nil {
		return Result{}, err
	}

	return mergeContext(res, c), nil
}

func buildUserContent(message string, c Context) string {
	parts := []string{message}
	if c.ProductID != "" {
		parts = append(parts, fmt.Sprintf(PromptContextProduct, c.ProductID))
	}
	if c.OrderID != "" {
		parts = append(parts, fmt.Sprintf(PromptContextOrder, c.OrderID))
	}
	return strings.Join(parts, " ")
}

// extractArguments prefers a set_intent call and falls back to a JSON object in text.
func extractArguments(msg llmprovider.Message) (string, bool) {
	for _, part := range msg.Parts {
		if part.FunctionCall != nil && part.FunctionCall.Name == ToolSetIntent && part.FunctionCall.RawArgs != "" {
			return part.FunctionCall.RawArgs, true
		}
	}
	for _, part := range msg.Parts {
		if text := stripCodeFence(part.Text); strings.HasPrefix(text, "{") {
			return text, true
		}
	}
	return "", false
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// parseArguments reads the set_intent arguments. Values of the wrong JSON type
// are dropped, and only the fields that belong to the intent are kept.
func parseArguments(raw string) (Result, error) {
	if !gjson.Valid(raw) {
		return Result{}, ErrDeclined
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return Result{}, ErrDeclined
	}

	in := doc.Get("intent")
	if !in.Exists() {
		return Result{}, ErrDeclined
	}
	res := Result{Intent: Unknown}
	if in.Type == gjson.String {
		res.Intent = Parse(strings.TrimSpace(in.Str))
	}

	switch res.Intent {
	case ListProducts:
		res.Params.Query = stringField(doc, "query")
		res.Params.Category = stringField(doc, "category")
		res.Params.MinPrice = priceField(doc, "minPrice")
		res.Params.MaxPrice = priceField(doc, "maxPrice")
		res.Params.ProductID = stringField(doc, "productId")
	case AddToCart:
		res.Params.ProductID = stringField(doc, "productId")
		res.Params.Quantity = quantityField(doc, "quantity")
	case Checkout, GetOrderStatus:
		res.Params.OrderID = stringField(doc, "orderId")
	}

	return res, nil
}

// mergeContext fills productId/orderId from the client context when the model
// left them empty. Extracted values always win.
func mergeContext(res Result, c Context) Result {
	switch res.Intent {
	case AddToCart, ListProducts:
		if res.Params.ProductID == "" {
			res.Params.ProductID = c.ProductID
		}
	case Checkout, GetOrderStatus:
		if res.Params.OrderID == "" {
			res.Params.OrderID = c.OrderID
		}
	}
	return res
}

func stringField(doc gjson.Result, key string) string {
	v := doc.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

func priceField(doc gjson.Result, key string) *float64 {
	v := doc.Get(key)
	if v.Type != gjson.Number || v.Num < 0 || math.IsInf(v.Num, 0) {
		return nil
	}
	return floatPtr(v.Num)
}

func quantityField(doc gjson.Result, key string) *int {
	v := doc.Get(key)
	if v.Type != gjson.Number || v.Num < 1 || v.Num != math.Trunc(v.Num) {
		return nil
	}
	return intPtr(int(v.Num))
}
