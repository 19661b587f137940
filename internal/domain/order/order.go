package order

import (
	"time"

	domcart "github.com/dhdiogoh/cyga-ecommerce/internal/domain/cart"
	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
)

type Status string

const (
	StatusPendente  Status = "pendente"
	StatusPago      Status = "pago"
	StatusEnviado   Status = "enviado"
	StatusEntregue  Status = "entregue"
	StatusCancelado Status = "cancelado"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendente, StatusPago, StatusEnviado, StatusEntregue, StatusCancelado:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCartaoCredito PaymentMethod = "cartao_credito"
	PaymentBoleto        PaymentMethod = "boleto"
	PaymentPix           PaymentMethod = "pix"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCartaoCredito, PaymentBoleto, PaymentPix:
		return true
	default:
		return false
	}
}

// Address is the delivery address snapshotted on the order.
type Address struct {
	Recipient  string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Zip        string
}

type Order struct {
	ID            string
	CustomerID    string
	Status        Status
	PaymentMethod PaymentMethod
	Address       Address
	Items         []Item
	Subtotal      money.Amount
	Shipping      money.Amount
	Total         money.Amount
	CreatedAt     time.Time
}

// Item carries the product snapshot taken from the cart line at
// checkout time.
type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	UnitPrice money.Amount
	Quantity  int64
}

// ItemsFromCart converts cart lines into order items.
func ItemsFromCart(lines []domcart.Line) []Item {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return items
}

type ListFilter struct {
	CustomerID string
	OrderID    string
}
