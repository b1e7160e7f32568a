package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestNewOrderRecord(t *testing.T) {
	buyer := BuyerDetails{Name: "Asha", Address: "12 MG Road", Phone: "9876543210"}
	contact := VendorContact{ProductID: 1, BusinessID: "biz-42", Email: "vendor@example.com"}
	items := []CartItem{
		{ProductID: 1, Name: "A", Price: strPtr("100"), Quantity: 2},
	}

	rec := NewOrderRecord("ORD-123456", buyer, contact, items, decimal.NewFromInt(206))

	assert.Equal(t, "ORD-123456", rec.OrderID)
	assert.Equal(t, "Asha", rec.BuyerName)
	assert.Equal(t, "12 MG Road", rec.BuyerAddress)
	assert.Equal(t, "9876543210", rec.BuyerPhone)
	assert.Equal(t, "biz-42", rec.BusinessID)
	assert.Equal(t, "vendor@example.com", rec.Email)
	assert.Equal(t, "206.00", rec.TotalCalculatedPrice)
	assert.False(t, rec.CreatedAt.IsZero())

	require.Len(t, rec.ItemList, 1)
	line := rec.ItemList[0]
	assert.Equal(t, int64(1), line.ID)
	assert.Equal(t, "A", line.Name)
	assert.Equal(t, "100", line.Price)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "200.00", line.Total)
}

func TestNewOrderRecord_MissingPriceUsesMarker(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Name: "Priced", Price: strPtr("49.5"), Quantity: 2},
		{ProductID: 2, Name: "Unpriced", Price: nil, Quantity: 3},
		{ProductID: 3, Name: "Unparsable", Price: strPtr("call us"), Quantity: 1},
	}

	rec := NewOrderRecord("ORD-999999", BuyerDetails{}, VendorContact{}, items, decimal.NewFromInt(142))

	require.Len(t, rec.ItemList, 3)
	assert.Equal(t, "49.5", rec.ItemList[0].Price)
	assert.Equal(t, "99.00", rec.ItemList[0].Total)
	assert.Equal(t, PriceNotAvailable, rec.ItemList[1].Price)
	assert.Equal(t, PriceNotAvailable, rec.ItemList[1].Total)
	assert.Equal(t, PriceNotAvailable, rec.ItemList[2].Price)
	assert.Equal(t, PriceNotAvailable, rec.ItemList[2].Total)
}

func TestNewOrderRecord_FormatsGrandTotalToTwoDecimals(t *testing.T) {
	rec := NewOrderRecord("ORD-100001", BuyerDetails{}, VendorContact{}, nil, decimal.RequireFromString("342.9"))
	assert.Equal(t, "342.90", rec.TotalCalculatedPrice)
	assert.Empty(t, rec.ItemList)
}

func TestCartItem_UnitPrice(t *testing.T) {
	priced := CartItem{Price: strPtr("12.50"), Quantity: 1}
	price, ok := priced.UnitPrice()
	require.True(t, ok)
	assert.Equal(t, "12.5", price.String())

	_, ok = CartItem{Price: nil}.UnitPrice()
	assert.False(t, ok)

	_, ok = CartItem{Price: strPtr("N/A")}.UnitPrice()
	assert.False(t, ok)
}
