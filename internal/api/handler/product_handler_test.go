package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

const createProductBody = `{
	"nombre": "Leche entera",
	"precio": 25.5,
	"descripcion": "Leche entera 1L",
	"fecha_caducidad": "2026-10-01T00:00:00Z",
	"fecha_compra": "2026-08-20T00:00:00Z",
	"stock": 40,
	"proveedor": "Lala",
	"precio_producto": 18.0
}`

func TestProductHandler_Create(t *testing.T) {
	var got ports.CreateProductInput
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			got = input
			return &domain.Product{ID: "p1", Name: input.Name, Price: input.Price}, nil
		},
	}
	h := NewProductHandler(stub)

	_, c, rec := newJSONContext(t, http.MethodPost, "/productos", createProductBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Name != "Leche entera" || got.Stock != 40 || got.Supplier != "Lala" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.ExpiresAt.IsZero() || got.PurchasedAt.IsZero() {
		t.Fatalf("dates not bound: %+v", got)
	}
	if !strings.Contains(rec.Body.String(), `"producto"`) {
		t.Fatalf("missing envelope: %s", rec.Body.String())
	}
}

func TestProductHandler_Create_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"precio":10,"descripcion":"x","fecha_caducidad":"2026-10-01T00:00:00Z","fecha_compra":"2026-08-20T00:00:00Z","proveedor":"Lala","precio_producto":8}`},
		{"negative price", `{"nombre":"x","precio":-1,"descripcion":"x","fecha_caducidad":"2026-10-01T00:00:00Z","fecha_compra":"2026-08-20T00:00:00Z","proveedor":"Lala","precio_producto":8}`},
		{"bad image url", `{"nombre":"x","precio":1,"descripcion":"x","fecha_caducidad":"2026-10-01T00:00:00Z","fecha_compra":"2026-08-20T00:00:00Z","proveedor":"Lala","precio_producto":8,"imagen_url":"not a url"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubProductService{
				createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
					t.Fatalf("service should not be called")
					return nil, nil
				},
			}
			h := NewProductHandler(stub)

			e, c, rec := newJSONContext(t, http.MethodPost, "/productos", tc.body)
			if err := h.Create(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestProductHandler_List(t *testing.T) {
	stub := &stubProductService{
		listFn: func(context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: "p1", Name: "Leche"}, {ID: "p2", Name: "Pan"}}, nil
		},
	}
	h := NewProductHandler(stub)

	_, c, rec := newJSONContext(t, http.MethodGet, "/productos", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"productos"`) {
		t.Fatalf("missing envelope: %s", rec.Body.String())
	}
}

func TestProductHandler_Update_PartialFields(t *testing.T) {
	var gotID string
	var got ports.UpdateProductInput
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			gotID, got = id, input
			return &domain.Product{ID: id, Name: "Leche", Stock: *input.Stock}, nil
		},
	}
	h := NewProductHandler(stub)

	_, c, rec := newJSONContext(t, http.MethodPatch, "/productos/p1", `{"stock":12}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "p1" {
		t.Fatalf("unexpected id: %s", gotID)
	}
	if got.Stock == nil || *got.Stock != 12 {
		t.Fatalf("stock not bound: %+v", got.Stock)
	}
	if got.Name != nil || got.Price != nil || got.ExpiresAt != nil {
		t.Fatalf("absent fields should stay nil: %+v", got)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	_, c, _ := newJSONContext(t, http.MethodGet, "/productos/p404", "")
	c.SetParamNames("id")
	c.SetParamValues("p404")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewProductHandler(stub)

	_, c, rec := newJSONContext(t, http.MethodDelete, "/productos/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "p1" {
		t.Fatalf("unexpected id: %s", deleted)
	}
}
