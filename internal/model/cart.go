package model

import "github.com/shopspring/decimal"

// CartItem is a single product selection held in a session cart.
// Price mirrors the catalogue's nullable string-encoded decimal.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     *string `json:"price,omitempty"`
	Quantity  int     `json:"quantity"`
}

// UnitPrice parses the item's price. The second return value is false when the
// price is absent or not a valid decimal; such items contribute nothing to totals.
func (i CartItem) UnitPrice() (decimal.Decimal, bool) {
	if i.Price == nil {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(*i.Price)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}

// LineTotal is the item's price times quantity, or false when the price is absent.
func (i CartItem) LineTotal() (decimal.Decimal, bool) {
	price, ok := i.UnitPrice()
	if !ok {
		return decimal.Decimal{}, false
	}
	return price.Mul(decimal.NewFromInt(int64(i.Quantity))), true
}
