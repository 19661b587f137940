package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
	productuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/product"
)

type createProductRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Image       string `json:"image"`
	Stock       int64  `json:"stock" validate:"gte=0"`
	Size        string `json:"size"`
	Material    string `json:"material"`
	CategoryID  string `json:"category_id" validate:"required"`
	IsActive    *bool  `json:"is_active"`
}

type updateProductRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3"`
	Description string `json:"description" validate:"omitempty,min=10"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Image       string `json:"image"`
	Stock       *int64 `json:"stock" validate:"omitempty,gte=0"`
	Size        string `json:"size"`
	Material    string `json:"material"`
	CategoryID  string `json:"category_id"`
	IsActive    bool   `json:"is_active"`
}

type bulkUpdateProductsRequest struct {
	IDs        []string `json:"ids" validate:"required,min=1,dive,required"`
	CategoryID *string  `json:"category_id"`
	IsActive   *bool    `json:"is_active"`
}

type bulkDiscountRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1,dive,required"`
	Kind   string   `json:"kind" validate:"required,oneof=percentage fixed"`
	Amount float64  `json:"amount" validate:"required,gt=0"`
}

func (a *API) handleListProductsAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domproduct.ListFilter{
		Search:     q.Get("q"),
		CategoryID: q.Get("category_id"),
	}
	if v := q.Get("only_active"); v == "1" || v == "true" {
		filter.OnlyActive = true
	}
	if v := q.Get("preco_min"); v != "" {
		if amt, err := money.ParseBRL(v); err == nil {
			filter.PriceMin = &amt
		}
	}
	if v := q.Get("preco_max"); v != "" {
		if amt, err := money.ParseBRL(v); err == nil {
			filter.PriceMax = &amt
		}
	}
	if v := q.Get("estoque_min"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.StockMin = &n
		}
	}
	if v := q.Get("estoque_max"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.StockMax = &n
		}
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p, err := a.productSvc.Create(r.Context(), &domproduct.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       money.Amount(req.PriceCents),
		Image:       req.Image,
		Stock:       req.Stock,
		Size:        req.Size,
		Material:    req.Material,
		CategoryID:  req.CategoryID,
		IsActive:    active,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (a *API) handleGetProductAdmin(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	// Stock is the one field where zero is a meaningful value, so
	// absence is encoded as -1 for the partial update.
	stock := int64(-1)
	if req.Stock != nil {
		stock = *req.Stock
	}

	p, err := a.productSvc.Update(r.Context(), &domproduct.Product{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       money.Amount(req.PriceCents),
		Image:       req.Image,
		Stock:       stock,
		Size:        req.Size,
		Material:    req.Material,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.productSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleBulkUpdateProducts(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateProductsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.productSvc.BulkUpdate(r.Context(), req.IDs, domproduct.BulkFields{
		CategoryID: req.CategoryID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": updated})
}

func (a *API) handleBulkDiscount(w http.ResponseWriter, r *http.Request) {
	var req bulkDiscountRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	products, err := a.productSvc.BulkDiscount(r.Context(), req.IDs, productuc.DiscountKind(req.Kind), req.Amount)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
