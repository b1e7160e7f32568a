// Package pricing derives checkout charges from a cart subtotal. It holds no
// state; a quote is recomputed from the current cart on every read.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	handlingCharge    = decimal.NewFromInt(6)
	deliveryCharge    = decimal.NewFromInt(37)
	freeDeliveryAbove = decimal.NewFromInt(300)
)

// Quote is the derived pricing view of a cart subtotal.
type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	HandlingCharge decimal.Decimal `json:"handlingCharge"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Message        string          `json:"message"`
}

// NewQuote computes the handling charge, the conditional delivery charge and
// the grand total for a subtotal. Delivery is 37 below a subtotal of 300 and
// free from 300 up; the message tells the buyer how far they are from the
// threshold.
func NewQuote(subtotal decimal.Decimal) Quote {
	delivery := decimal.Zero
	message := "Congratulations! You are eligible for free delivery."
	if subtotal.LessThan(freeDeliveryAbove) {
		delivery = deliveryCharge
		message = fmt.Sprintf(
			"Add items worth ₹%s more to get free delivery!",
			freeDeliveryAbove.Sub(subtotal).StringFixed(2),
		)
	}

	return Quote{
		Subtotal:       subtotal,
		HandlingCharge: handlingCharge,
		DeliveryCharge: delivery,
		GrandTotal:     subtotal.Add(handlingCharge).Add(delivery),
		Message:        message,
	}
}
