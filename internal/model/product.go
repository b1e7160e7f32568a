package model

import "time"

// Product represents a catalogue listing from the new_products collection.
// Price is a string-encoded decimal and may be absent for contact-only listings.
type Product struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Category        string    `json:"category" db:"category"`
	Price           *string   `json:"price,omitempty" db:"price"`
	PriceINR        string    `json:"priceInr" db:"price_inr"`
	DiscountedPrice *string   `json:"discountedPrice,omitempty" db:"discounted_price"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// VendorContact is the owning business and contact email for a product,
// resolved from the products collection at checkout time.
type VendorContact struct {
	ProductID  int64  `json:"productId" db:"id"`
	BusinessID string `json:"businessId" db:"business_id"`
	Email      string `json:"email" db:"email"`
}
