package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/http/problem"
	"github.com/ovenlight/mealdesk-backend/internal/services"
	"github.com/ovenlight/mealdesk-backend/internal/validate"
)

// stubCatalog overrides the handful of methods a test needs; any other
// call panics via the embedded nil interface, which is the point.
type stubCatalog struct {
	services.CatalogService

	createCalls int
	createErr   error
	getCalls    int
	getRow      *types.Product
	getErr      error
}

func (s *stubCatalog) CreateProduct(ctx context.Context, in validate.ProductInput) (*types.Product, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &types.Product{ID: 1, Name: "Waffle"}, nil
}

func (s *stubCatalog) GetProduct(ctx context.Context, id uint) (*types.Product, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getRow, nil
}

func newProductRouter(svc services.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(svc)
	r := gin.New()
	r.POST("/api/products", h.Create)
	r.GET("/api/products/:id", h.Get)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, problem.Problem) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var p problem.Problem
	if w.Code >= 400 {
		if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
			t.Fatalf("decode problem payload: %v (%s)", err, w.Body.String())
		}
	}
	return w, p
}

func TestCreateProductMalformedBodyShortCircuits(t *testing.T) {
	svc := &stubCatalog{}
	r := newProductRouter(svc)

	w, p := doRequest(t, r, http.MethodPost, "/api/products", `{"name": "Waffle", "price": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if p.Title != "Parsing JSON Error" {
		t.Fatalf("title = %q", p.Title)
	}
	// Parse failures never reach the service, whatever else is wrong
	// with the payload.
	if svc.createCalls != 0 {
		t.Fatalf("service called %d times on malformed input", svc.createCalls)
	}
}

func TestCreateProductValidationFailure(t *testing.T) {
	svc := &stubCatalog{
		createErr: failure.Validation("catalog.product.create", []failure.FieldError{
			{Field: "name", Message: "name must not be empty"},
			{Field: "price", Message: "price must be a non-negative number"},
		}),
	}
	r := newProductRouter(svc)

	w, p := doRequest(t, r, http.MethodPost, "/api/products", `{"name": "", "price": "oops"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if p.Title != "Validation Error" {
		t.Fatalf("title = %q", p.Title)
	}
	raw, _ := json.Marshal(p.Errors)
	var fields []failure.FieldError
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("decode errors: %v", err)
	}
	if len(fields) != 2 || fields[0].Field != "name" || fields[1].Field != "price" {
		t.Fatalf("fields = %+v", fields)
	}
	if svc.createCalls != 1 {
		t.Fatalf("service calls = %d", svc.createCalls)
	}
}

func TestGetProductGarbageID(t *testing.T) {
	svc := &stubCatalog{}
	r := newProductRouter(svc)

	w, p := doRequest(t, r, http.MethodGet, "/api/products/banana", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if p.Title != "Object was not Found" {
		t.Fatalf("title = %q", p.Title)
	}
	if svc.getCalls != 0 {
		t.Fatalf("service called for garbage id")
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := &stubCatalog{getErr: failure.NotFound("catalog.product.get", "product", 42)}
	r := newProductRouter(svc)

	w, p := doRequest(t, r, http.MethodGet, "/api/products/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if p.Detail != "product with id 42 does not exist" {
		t.Fatalf("detail = %q", p.Detail)
	}
}

func TestGetProductOK(t *testing.T) {
	svc := &stubCatalog{getRow: &types.Product{ID: 7, Name: "Waffle"}}
	r := newProductRouter(svc)

	w, _ := doRequest(t, r, http.MethodGet, "/api/products/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var out types.Product
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.ID != 7 || out.Name != "Waffle" {
		t.Fatalf("body = %+v", out)
	}
}
