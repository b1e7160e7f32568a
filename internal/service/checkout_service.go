package service

import (
	"context"
	"errors"
	"fmt"

	"bazaar-kart/internal/cart"
	"bazaar-kart/internal/model"
	"bazaar-kart/internal/orderid"
	"bazaar-kart/internal/pricing"
	"bazaar-kart/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxIDAttempts bounds regeneration when a generated order id collides with a
// persisted one.
const maxIDAttempts = 3

// checkoutService implements CheckoutService.
type checkoutService struct {
	carts       *cart.Store
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	generator   orderid.Generator
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	carts *cart.Store,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	generator orderid.Generator,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		carts:       carts,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		generator:   generator,
		validate:    validator.New(),
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout snapshots the cart into an immutable order record and persists it
// with a single insert. The cart is cleared only after the insert succeeds, so
// a failed submission leaves the cart contents intact. Vendor business id and
// email are taken from the first resolved product; carts spanning multiple
// vendors are not split.
func (s *checkoutService) Checkout(ctx context.Context, cartID uuid.UUID, buyer model.BuyerDetails) (string, error) {
	c, ok := s.carts.Get(cartID)
	if !ok {
		s.logger.Warn().Str("cart_id", cartID.String()).Msg("cart not found")
		return "", model.ErrCartNotFound
	}

	items := c.Items()
	if len(items) == 0 {
		s.logger.Warn().Str("cart_id", cartID.String()).Msg("cart is empty")
		return "", model.ErrCartEmpty
	}

	if err := s.validate.Struct(buyer); err != nil {
		s.logger.Warn().Err(err).Str("cart_id", cartID.String()).Msg("invalid buyer details")
		return "", model.ErrMissingBuyerField
	}

	// Price the snapshot, not the live cart, so total_calculated_price always
	// agrees with item_list even if the cart is mutated concurrently.
	subtotal := decimal.Zero
	productIDs := make([]int64, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
		if total, ok := item.LineTotal(); ok {
			subtotal = subtotal.Add(total)
		}
	}
	quote := pricing.NewQuote(subtotal)

	contacts, err := s.productRepo.GetVendorContacts(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to resolve vendor contacts")
		return "", fmt.Errorf("failed to resolve vendor contacts: %w", err)
	}
	if len(contacts) == 0 {
		s.logger.Warn().
			Str("cart_id", cartID.String()).
			Int("product_count", len(productIDs)).
			Msg("no vendor contact resolved for cart items")
		return "", model.ErrProductNotFound
	}
	contact := contacts[0]

	var rec *model.OrderRecord
	for attempt := 1; ; attempt++ {
		rec = model.NewOrderRecord(s.generator.Generate(), buyer, contact, items, quote.GrandTotal)

		err = s.orderRepo.Insert(ctx, rec)
		if err == nil {
			break
		}
		if errors.Is(err, model.ErrDuplicateOrderID) && attempt < maxIDAttempts {
			s.logger.Warn().
				Str("order_id", rec.OrderID).
				Int("attempt", attempt).
				Msg("order id collision, regenerating")
			continue
		}
		s.logger.Error().Err(err).Str("order_id", rec.OrderID).Msg("failed to persist order")
		return "", fmt.Errorf("failed to persist order: %w", err)
	}

	c.Clear()

	s.logger.Info().
		Str("order_id", rec.OrderID).
		Str("cart_id", cartID.String()).
		Int("item_count", len(items)).
		Str("total_calculated_price", rec.TotalCalculatedPrice).
		Msg("order placed successfully")

	return rec.OrderID, nil
}
