package http

import (
	"net/http"

	domcustomer "github.com/dhdiogoh/cyga-ecommerce/internal/domain/customer"
	domorder "github.com/dhdiogoh/cyga-ecommerce/internal/domain/order"
	orderuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/order"
)

type checkoutRequest struct {
	Customer struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone"`
	} `json:"customer" validate:"required"`
	Address struct {
		Recipient  string `json:"recipient" validate:"required"`
		Street     string `json:"street" validate:"required"`
		Number     string `json:"number" validate:"required"`
		Complement string `json:"complement"`
		District   string `json:"district" validate:"required"`
		City       string `json:"city" validate:"required"`
		State      string `json:"state" validate:"required,len=2"`
		Zip        string `json:"zip" validate:"required"`
	} `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	order, err := a.orderSvc.Checkout(r.Context(), orderuc.CheckoutInput{
		CartID: cartID(w, r),
		Customer: domcustomer.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
			City:  req.Address.City,
			State: req.Address.State,
		},
		Address: domorder.Address{
			Recipient:  req.Address.Recipient,
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
			District:   req.Address.District,
			City:       req.Address.City,
			State:      req.Address.State,
			Zip:        req.Address.Zip,
		},
		Payment: domorder.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapOrder(order))
}

// handleListOrdersPublic backs the storefront's order lookup page.
// Callers narrow by customer or by a single order id.
func (a *API) handleListOrdersPublic(w http.ResponseWriter, r *http.Request) {
	filter := domorder.ListFilter{
		CustomerID: r.URL.Query().Get("usuario_id"),
		OrderID:    r.URL.Query().Get("pedido_id"),
	}

	orders, err := a.orderSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
