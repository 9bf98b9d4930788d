package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/catalog"
	"chat-commerce/pkg/log"
)

type mockUseCase struct {
	products []catalog.Product
	filters  catalog.Filters
	err      error
}

func (m *mockUseCase) ListAll(ctx context.Context) ([]catalog.Product, error) {
	return m.products, m.err
}

func (m *mockUseCase) SearchWithFilters(ctx context.Context, f catalog.Filters) ([]catalog.Product, error) {
	m.filters = f
	return m.products, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (catalog.Product, error) {
	if m.err != nil {
		return catalog.Product{}, m.err
	}
	return m.products[0], nil
}

func serve(uc catalog.UseCase, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/products"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestList(t *testing.T) {
	uc := &mockUseCase{products: []catalog.Product{{ID: "p1", Name: "Phone", Stock: 0}}}
	w := serve(uc, "/api/v1/products")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Data.Products) != 1 || !body.Data.Products[0].OutOfStock {
		t.Errorf("unexpected products %+v", body.Data.Products)
	}
}

func TestSearch_BindsFilters(t *testing.T) {
	uc := &mockUseCase{}
	w := serve(uc, "/api/v1/products/search?q=laptop&category=electronics&maxPrice=50000")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.filters.Query != "laptop" || uc.filters.Category != "electronics" {
		t.Errorf("unexpected filters %+v", uc.filters)
	}
	if uc.filters.MaxPrice == nil || *uc.filters.MaxPrice != 50000 || uc.filters.MinPrice != nil {
		t.Errorf("unexpected price filters %+v", uc.filters)
	}
}

func TestDetail_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{catalog.ErrProductNotFound, http.StatusNotFound},
		{catalog.ErrInvalidID, http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := serve(&mockUseCase{err: tt.err}, "/api/v1/products/abc")
		if w.Code != tt.want {
			t.Errorf("%v: expected %d, got %d", tt.err, tt.want, w.Code)
		}
	}
}
