package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "github.com/dhdiogoh/cyga-ecommerce/internal/domain/cart"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
	cartuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/cart"
)

type fakeCartStore struct {
	data map[string][]domcart.Line
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{data: make(map[string][]domcart.Line)}
}

func (f *fakeCartStore) Load(ctx context.Context, cartID string) ([]domcart.Line, error) {
	return append([]domcart.Line(nil), f.data[cartID]...), nil
}

func (f *fakeCartStore) Save(ctx context.Context, cartID string, lines []domcart.Line) error {
	f.data[cartID] = append([]domcart.Line(nil), lines...)
	return nil
}

type fakeCatalogForCart struct {
	products map[string]*domproduct.Product
}

func newFakeCatalogForCart() *fakeCatalogForCart {
	return &fakeCatalogForCart{
		products: map[string]*domproduct.Product{
			"p1": {ID: "p1", Name: "Anel Solitário", Price: 15000, Stock: 10, IsActive: true},
			"p2": {ID: "p2", Name: "Colar Ponto de Luz", Price: 29990, Stock: 5, IsActive: true},
			"p3": {ID: "p3", Name: "Brinco Desativado", Price: 9900, Stock: 3, IsActive: false},
		},
	}
}

func (f *fakeCatalogForCart) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func setupCartAPI() (*API, *fakeCartStore) {
	store := newFakeCartStore()
	cartSvc := cartuc.NewService(store, newFakeCatalogForCart(), nil)

	api := NewAPI(Dependencies{
		CartService: cartSvc,
	})
	return api, store
}

func doCartRequest(t *testing.T, api *API, method, path, cartID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-ID", cartID)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestCart_AddItemAndGet(t *testing.T) {
	api, _ := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
		"product_id": "p1",
		"quantity":   3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doCartRequest(t, api, http.MethodGet, "/api/v1/carrinho", "c1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	items, ok := resp["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	require.Equal(t, "p1", item["product_id"])
	require.Equal(t, float64(3), item["quantity"])
	require.Equal(t, "Anel Solitário", item["name"])
	require.Equal(t, float64(15000), item["unit_price"])

	require.Equal(t, float64(45000), resp["subtotal_cents"])
	require.Equal(t, float64(0), resp["shipping_cents"])
	require.Equal(t, float64(45000), resp["total_cents"])
	require.Equal(t, true, resp["free_shipping"])
	require.Equal(t, "R$ 450,00", resp["total"])
}

func TestCart_ShippingChargedBelowThreshold(t *testing.T) {
	api, _ := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
		"product_id": "p1",
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(15000), resp["subtotal_cents"])
	require.Equal(t, float64(1990), resp["shipping_cents"])
	require.Equal(t, float64(16990), resp["total_cents"])
	require.Equal(t, false, resp["free_shipping"])
}

func TestCart_AddUnknownProductIsNoOp(t *testing.T) {
	api, store := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
		"product_id": "ghost",
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp["items"])
	require.Empty(t, store.data["c1"])
}

func TestCart_AddInactiveProductIsNoOp(t *testing.T) {
	api, _ := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
		"product_id": "p3",
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp["items"])
}

func TestCart_RepeatedAddMergesLine(t *testing.T) {
	api, _ := setupCartAPI()

	for i := 0; i < 2; i++ {
		rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
			"product_id": "p2",
			"quantity":   2,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doCartRequest(t, api, http.MethodGet, "/api/v1/carrinho", "c1", nil)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	items := resp["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(4), items[0].(map[string]any)["quantity"])
}

func TestCart_UpdateQuantityToZeroRemovesLine(t *testing.T) {
	api, _ := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
		"product_id": "p1",
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doCartRequest(t, api, http.MethodPut, "/api/v1/carrinho/p1", "c1", map[string]any{
		"quantity": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp["items"])
}

func TestCart_RemoveItem(t *testing.T) {
	api, _ := setupCartAPI()

	for _, id := range []string{"p1", "p2"} {
		rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
			"product_id": id,
			"quantity":   1,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doCartRequest(t, api, http.MethodDelete, "/api/v1/carrinho/p1", "c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, "p2", items[0].(map[string]any)["product_id"])
}

func TestCart_ClearEmptiesCart(t *testing.T) {
	api, store := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "c1", map[string]any{
		"product_id": "p1",
		"quantity":   5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doCartRequest(t, api, http.MethodDelete, "/api/v1/carrinho", "c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, store.data["c1"])
}

func TestCart_IsolatedByCartID(t *testing.T) {
	api, _ := setupCartAPI()

	rec := doCartRequest(t, api, http.MethodPost, "/api/v1/carrinho", "cart-a", map[string]any{
		"product_id": "p1",
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doCartRequest(t, api, http.MethodGet, "/api/v1/carrinho", "cart-b", nil)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp["items"])
}

func TestCart_CookieMintedOnFirstContact(t *testing.T) {
	api, _ := setupCartAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carrinho", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cartCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "first contact should set the cart cookie")
	require.NotEmpty(t, cookie.Value)
}
