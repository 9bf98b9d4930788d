package llmprovider

import (
	"context"
	"testing"

	"chat-commerce/pkg/gemini"
)

type mockGeminiClient struct {
	lastReq  *gemini.Request
	response *gemini.Response
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	return m.response, nil
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	client := &mockGeminiClient{response: &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{
			FunctionCall: &gemini.FunctionCall{Name: "set_intent", Args: map[string]interface{}{"intent": "GET_CART"}},
		}}},
		FinishReason: "STOP",
	}}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		Messages:    []Message{NewTextMessage("user", "view cart"), NewTextMessage("assistant", "ok")},
		Tools:       []Tool{{Name: "set_intent"}},
		RequireTool: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !client.lastReq.ForceFunctionCall {
		t.Error("RequireTool must map to ForceFunctionCall")
	}
	if client.lastReq.Messages[1].Role != "model" {
		t.Errorf("assistant role must map to model, got %s", client.lastReq.Messages[1].Role)
	}
	if resp.Content.Role != "assistant" {
		t.Errorf("model role must map back to assistant, got %s", resp.Content.Role)
	}
	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil || fc.RawArgs != `{"intent":"GET_CART"}` {
		t.Errorf("unexpected function call: %+v", fc)
	}
	if resp.Usage == nil {
		t.Error("usage must never be nil")
	}
	if resp.FinishReason != "STOP" {
		t.Errorf("finish reason not carried, got %q", resp.FinishReason)
	}
}
