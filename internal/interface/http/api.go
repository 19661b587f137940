package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "github.com/dhdiogoh/cyga-ecommerce/internal/domain/cart"
	domcategory "github.com/dhdiogoh/cyga-ecommerce/internal/domain/category"
	domcustomer "github.com/dhdiogoh/cyga-ecommerce/internal/domain/customer"
	domorder "github.com/dhdiogoh/cyga-ecommerce/internal/domain/order"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
	domuser "github.com/dhdiogoh/cyga-ecommerce/internal/domain/user"
	authuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/auth"
	cartuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/cart"
	cataloguc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/catalog"
	categoryuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/category"
	customeruc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/customer"
	orderuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/order"
	productuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/product"
)

type API struct {
	authSvc     *authuc.Service
	catalogSvc  *cataloguc.Service
	productSvc  *productuc.Service
	categorySvc *categoryuc.Service
	customerSvc *customeruc.Service
	cartSvc     *cartuc.Service
	orderSvc    *orderuc.Service
	validator   *validator.Validate
	tokenSvc    authuc.TokenService
}

type Dependencies struct {
	AuthService     *authuc.Service
	CatalogService  *cataloguc.Service
	ProductService  *productuc.Service
	CategoryService *categoryuc.Service
	CustomerService *customeruc.Service
	CartService     *cartuc.Service
	OrderService    *orderuc.Service
	TokenService    authuc.TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:     deps.AuthService,
		catalogSvc:  deps.CatalogService,
		productSvc:  deps.ProductService,
		categorySvc: deps.CategoryService,
		customerSvc: deps.CustomerService,
		cartSvc:     deps.CartService,
		orderSvc:    deps.OrderService,
		tokenSvc:    deps.TokenService,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)

		r.Get("/produtos", a.handleListProducts)
		r.Get("/produtos/{id}", a.handleGetProduct)
		r.Get("/categorias", a.handleListCategoriesPublic)

		r.Route("/carrinho", func(cr chi.Router) {
			cr.Get("/", a.handleGetCart)
			cr.Post("/", a.handleAddCartItem)
			cr.Delete("/", a.handleClearCart)
			cr.Put("/{productId}", a.handleUpdateCartItem)
			cr.Delete("/{productId}", a.handleRemoveCartItem)
		})

		r.Post("/checkout", a.handleCheckout)
		r.Get("/pedidos", a.handleListOrdersPublic)

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)
			ar.Use(a.requireRoles(domuser.RoleCodeAdmin))

			ar.Route("/admin", func(admin chi.Router) {
				admin.Route("/categorias", func(rr chi.Router) {
					rr.Get("/", a.handleListCategories)
					rr.Post("/", a.handleCreateCategory)
					rr.Get("/{id}", a.handleGetCategory)
					rr.Put("/{id}", a.handleUpdateCategory)
					rr.Delete("/{id}", a.handleDeleteCategory)
				})

				admin.Route("/clientes", func(rr chi.Router) {
					rr.Get("/", a.handleListCustomers)
					rr.Post("/", a.handleCreateCustomer)
					rr.Get("/{id}", a.handleGetCustomer)
					rr.Put("/{id}", a.handleUpdateCustomer)
					rr.Delete("/{id}", a.handleDeleteCustomer)
				})

				admin.Route("/produtos", func(rr chi.Router) {
					rr.Get("/", a.handleListProductsAdmin)
					rr.Post("/", a.handleCreateProduct)
					rr.Post("/bulk", a.handleBulkUpdateProducts)
					rr.Post("/desconto", a.handleBulkDiscount)
					rr.Get("/{id}", a.handleGetProductAdmin)
					rr.Put("/{id}", a.handleUpdateProduct)
					rr.Delete("/{id}", a.handleDeleteProduct)
				})

				admin.Route("/pedidos", func(rr chi.Router) {
					rr.Get("/", a.handleListOrders)
					rr.Get("/{id}", a.handleGetOrder)
					rr.Patch("/{id}", a.handleUpdateOrderStatus)
				})
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role_code": u.RoleCode,
	}
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"is_active":   c.IsActive,
	}
}

func mapCustomer(c *domcustomer.Customer) map[string]any {
	return map[string]any{
		"id":    c.ID,
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
		"city":  c.City,
		"state": c.State,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"price_cents":   p.Price,
		"price":         p.Price.FormatBRL(),
		"image":         p.Image,
		"stock":         p.Stock,
		"size":          p.Size,
		"material":      p.Material,
		"category_id":   p.CategoryID,
		"category_name": p.CategoryName,
		"is_active":     p.IsActive,
	}
}

func mapCart(c *domcart.Cart) map[string]any {
	lines := c.Lines()
	items := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		items = append(items, map[string]any{
			"product_id":  line.ProductID,
			"name":        line.Name,
			"unit_price":  line.UnitPrice,
			"quantity":    line.Quantity,
			"image":       line.Image,
			"line_total":  line.UnitPrice.Mul(line.Quantity),
		})
	}

	quote := c.Quote()
	return map[string]any{
		"items":          items,
		"item_count":     c.ItemCount(),
		"subtotal_cents": quote.Subtotal,
		"shipping_cents": quote.Shipping,
		"total_cents":    quote.Total,
		"subtotal":       quote.Subtotal.FormatBRL(),
		"shipping":       quote.Shipping.FormatBRL(),
		"total":          quote.Total.FormatBRL(),
		"free_shipping":  quote.FreeShipping(),
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit_price": item.UnitPrice,
			"quantity":   item.Quantity,
		})
	}

	return map[string]any{
		"id":             o.ID,
		"customer_id":    o.CustomerID,
		"status":         o.Status,
		"payment_method": o.PaymentMethod,
		"address": map[string]any{
			"recipient":  o.Address.Recipient,
			"street":     o.Address.Street,
			"number":     o.Address.Number,
			"complement": o.Address.Complement,
			"district":   o.Address.District,
			"city":       o.Address.City,
			"state":      o.Address.State,
			"zip":        o.Address.Zip,
		},
		"subtotal_cents": o.Subtotal,
		"shipping_cents": o.Shipping,
		"total_cents":    o.Total,
		"total":          o.Total.FormatBRL(),
		"created_at":     o.CreatedAt,
		"items":          items,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domuser.ErrInvalidCredential),
		errors.Is(err, domuser.ErrInvalidRoleCode):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domcategory.ErrCategoryNameExists),
		errors.Is(err, domcustomer.ErrEmailAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUserNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domcustomer.ErrCustomerNotFound),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domorder.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domorder.ErrEmptyOrderItems),
		errors.Is(err, domorder.ErrInvalidPayment),
		errors.Is(err, domorder.ErrInvalidStatus),
		errors.Is(err, domorder.ErrCheckoutValidation):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
