package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcatalog "github.com/dhdiogoh/cyga-ecommerce/internal/domain/catalog"
	domcategory "github.com/dhdiogoh/cyga-ecommerce/internal/domain/category"
	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	cataloguc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/catalog"
)

// handleListProducts serves the storefront listing. Filter params may
// repeat to select several values in one dimension, e.g.
// ?categoria=Colares&categoria=Brincos&faixa=100-300&ordenar=preco-asc
func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := cataloguc.Query{
		Criteria: criteriaFromQuery(r),
		Search:   r.URL.Query().Get("q"),
	}
	if v := r.URL.Query().Get("preco_min"); v != "" {
		if amt, err := money.ParseBRL(v); err == nil {
			query.PriceMin = &amt
		}
	}
	if v := r.URL.Query().Get("preco_max"); v != "" {
		if amt, err := money.ParseBRL(v); err == nil {
			query.PriceMax = &amt
		}
	}

	products, err := a.catalogSvc.List(r.Context(), query)
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

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleListCategoriesPublic(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categorySvc.List(r.Context(), domcategory.ListFilter{OnlyActive: true})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, mapCategory(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

// criteriaFromQuery rebuilds the filter selection from the request. A
// fresh controller toggles each selected value in, then applies, so
// the request is handled with the same staged/applied mechanics the
// storefront sidebar uses.
func criteriaFromQuery(r *http.Request) domcatalog.Criteria {
	ctrl := domcatalog.NewController()
	q := r.URL.Query()

	for _, v := range q["categoria"] {
		ctrl.ToggleCategory(domcatalog.Category(v))
	}
	for _, v := range q["material"] {
		ctrl.ToggleMaterial(domcatalog.Material(v))
	}
	for _, v := range q["faixa"] {
		ctrl.ToggleBracket(domcatalog.PriceBracket(v))
	}
	if sort := q.Get("ordenar"); sort != "" {
		ctrl.SetSort(domcatalog.SortKey(sort))
	}

	ctrl.Apply()
	return ctrl.Applied()
}
