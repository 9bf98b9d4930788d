package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/model"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/scope"
)

type mockJWT struct {
	valid map[string]model.Scope
}

func (m mockJWT) CreateToken(sc model.Scope) (string, error)        { return "", nil }
func (m mockJWT) CreateRefreshToken(sc model.Scope) (string, error) { return "", nil }
func (m mockJWT) VerifyRefresh(token string) (model.Scope, error)   { return model.Scope{}, nil }
func (m mockJWT) Verify(token string) (model.Scope, error) {
	if sc, ok := m.valid[token]; ok {
		return sc, nil
	}
	return model.Scope{}, errors.New("bad token")
}

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"userId": sc.UserID, "requestId": log.RequestIDFromContext(c.Request.Context())})
	})
	r.GET("/x", handlers...)
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), mockJWT{valid: map[string]model.Scope{"good": {UserID: "u1"}}}, 60)
	r := newRouter(mw, mw.Auth())

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"no header", nil, http.StatusUnauthorized},
		{"not bearer", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized},
		{"invalid token", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
		{"valid token", map[string]string{"Authorization": "Bearer good"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(r, tt.header); w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAgentAuth_Envelope(t *testing.T) {
	mw := New(log.NewNop(), mockJWT{}, 60)
	w := do(newRouter(mw, mw.AgentAuth()), nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["type"] != "error" || body["message"] != "Unauthorized. Please log in." {
		t.Errorf("unexpected body %v", body)
	}
	if v, ok := body["data"]; !ok || v != nil {
		t.Errorf("data must be present and null, got %v", body)
	}
}

func TestChatRateLimit(t *testing.T) {
	mw := New(log.NewNop(), mockJWT{valid: map[string]model.Scope{"good": {UserID: "u1"}}}, 10) // burst 1
	r := newRouter(mw, mw.AgentAuth(), mw.ChatRateLimit())
	auth := map[string]string{"Authorization": "Bearer good"}

	if w := do(r, auth); w.Code != http.StatusOK {
		t.Fatalf("first message must pass, got %d", w.Code)
	}
	w := do(r, auth)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["type"] != "error" {
		t.Errorf("429 must use the agent error shape, got %v", body)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(Middleware{}, RequestID())

	w := do(r, map[string]string{"X-Request-ID": "req-1"})
	if w.Header().Get("X-Request-ID") != "req-1" {
		t.Errorf("incoming id must be echoed, got %q", w.Header().Get("X-Request-ID"))
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["requestId"] != "req-1" {
		t.Errorf("id must reach the context, got %v", body)
	}

	if w := do(r, nil); w.Header().Get("X-Request-ID") == "" {
		t.Error("a request id must be generated")
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://shop.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, origin := range []string{"http://localhost:5173", "https://shop.example.com"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get("Access-Control-Allow-Origin") != origin {
			t.Errorf("origin %s not allowed", origin)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Errorf("credentials not allowed for %s", origin)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("unknown origin must be rejected, got %d", w.Code)
	}
}
