package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceNotAvailable marks an order line whose product carries no parsable price.
const PriceNotAvailable = "N/A"

// BuyerDetails carries the buyer-entered checkout fields.
type BuyerDetails struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// OrderLine is one line of a persisted order, with the price and line total
// captured as formatted strings at submission time.
type OrderLine struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

// OrderRecord is the immutable snapshot persisted to order_rec when an order is
// placed. It is created once and never mutated by the checkout workflow.
type OrderRecord struct {
	OrderID              string      `json:"order_id" db:"order_id"`
	BuyerName            string      `json:"buyer_name" db:"buyer_name"`
	BuyerAddress         string      `json:"buyer_address" db:"buyer_address"`
	BuyerPhone           string      `json:"buyer_phone" db:"buyer_phone"`
	BusinessID           string      `json:"business_id" db:"business_id"`
	Email                string      `json:"email" db:"email"`
	TotalCalculatedPrice string      `json:"total_calculated_price" db:"total_calculated_price"`
	ItemList             []OrderLine `json:"item_list" db:"item_list"`
	CreatedAt            time.Time   `json:"created_at" db:"created_at"`
}

// NewOrderRecord builds the order snapshot from the cart contents, the priced
// grand total and the resolved vendor contact. Line totals are price*quantity
// to two decimals; items without a parsable price carry the N/A marker instead.
func NewOrderRecord(
	orderID string,
	buyer BuyerDetails,
	contact VendorContact,
	items []CartItem,
	grandTotal decimal.Decimal,
) *OrderRecord {
	lines := make([]OrderLine, len(items))
	for i, item := range items {
		line := OrderLine{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    PriceNotAvailable,
			Quantity: item.Quantity,
			Total:    PriceNotAvailable,
		}
		if total, ok := item.LineTotal(); ok {
			line.Price = *item.Price
			line.Total = total.StringFixed(2)
		}
		lines[i] = line
	}

	return &OrderRecord{
		OrderID:              orderID,
		BuyerName:            buyer.Name,
		BuyerAddress:         buyer.Address,
		BuyerPhone:           buyer.Phone,
		BusinessID:           contact.BusinessID,
		Email:                contact.Email,
		TotalCalculatedPrice: grandTotal.StringFixed(2),
		ItemList:             lines,
		CreatedAt:            time.Now(),
	}
}
