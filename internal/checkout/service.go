package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/cart"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/coupons"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/pricing"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/config"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
	redispkg "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	CheckoutSessionKey(cartID string) string
	OrderHandoffKey(orderID string) string
}

type cartAccess interface {
	Get(ctx context.Context, cartID string) (*cart.Snapshot, error)
	Clear(ctx context.Context, cartID string) (*cart.Snapshot, *cart.Event, error)
}

// QuoteInput carries the optional overrides for a quote request. Nil fields
// fall back to whatever the checkout session already holds.
type QuoteInput struct {
	ShippingMethod *string
	CouponCode     *string
}

// Quote is the priced view of a cart under the current checkout session.
type Quote struct {
	pricing.Computation
	ShippingMethod enums.ShippingMethod `json:"shipping_method"`
	Coupon         *coupons.Coupon      `json:"coupon,omitempty"`
	ItemCount      int                  `json:"item_count"`
	FreeDeliveryAt int                  `json:"free_delivery_at"`
}

// Order is the hand-off payload written for the payment page.
type Order struct {
	ID             string               `json:"id"`
	CartID         string               `json:"cart_id"`
	Entries        []cart.Entry         `json:"entries"`
	ShippingMethod enums.ShippingMethod `json:"shipping_method"`
	CouponCode     string               `json:"coupon_code,omitempty"`
	Pricing        pricing.Computation  `json:"pricing"`
	PlacedAt       time.Time            `json:"placed_at"`
}

// Service orchestrates quoting, coupon session state and order placement.
type Service interface {
	GetQuote(ctx context.Context, cartID string, input QuoteInput) (*Quote, error)
	ApplyCoupon(ctx context.Context, cartID, code string) (*Quote, error)
	RemoveCoupon(ctx context.Context, cartID string) (*Quote, error)
	PlaceOrder(ctx context.Context, cartID string) (*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
}

type service struct {
	sessions sessionStore
	carts    cartAccess
	catalog  *coupons.Catalog
	cfg      config.CheckoutConfig
	logg     *logger.Logger
}

// NewService builds the checkout service.
func NewService(sessions sessionStore, carts cartAccess, catalog *coupons.Catalog, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart access required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("coupon catalog required")
	}
	return &service{sessions: sessions, carts: carts, catalog: catalog, cfg: cfg, logg: logg}, nil
}

// GetQuote prices the cart under the session, applying any overrides first.
// A rejected override leaves the session untouched.
func (s *service) GetQuote(ctx context.Context, cartID string, input QuoteInput) (*Quote, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}

	session := s.loadSession(ctx, cartID)

	if input.ShippingMethod != nil {
		method, err := enums.ParseShippingMethod(strings.TrimSpace(*input.ShippingMethod))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping method")
		}
		session.ShippingMethod = method
	}
	if input.CouponCode != nil {
		if strings.TrimSpace(*input.CouponCode) == "" {
			session.CouponCode = ""
		} else {
			coupon, err := s.catalog.Resolve(*input.CouponCode)
			if err != nil {
				return nil, err
			}
			session.CouponCode = coupon.Code
		}
	}

	if err := s.saveSession(ctx, cartID, session); err != nil {
		return nil, err
	}
	return s.quoteFor(ctx, cartID, session)
}

// ApplyCoupon replaces any applied coupon with the resolved code.
func (s *service) ApplyCoupon(ctx context.Context, cartID, code string) (*Quote, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}

	coupon, err := s.catalog.Resolve(code)
	if err != nil {
		return nil, err
	}

	session := s.loadSession(ctx, cartID)
	session.CouponCode = coupon.Code
	if err := s.saveSession(ctx, cartID, session); err != nil {
		return nil, err
	}
	return s.quoteFor(ctx, cartID, session)
}

// RemoveCoupon drops the applied coupon, if any.
func (s *service) RemoveCoupon(ctx context.Context, cartID string) (*Quote, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}

	session := s.loadSession(ctx, cartID)
	session.CouponCode = ""
	if err := s.saveSession(ctx, cartID, session); err != nil {
		return nil, err
	}
	return s.quoteFor(ctx, cartID, session)
}

// PlaceOrder freezes the current quote into an order hand-off payload, then
// clears both the checkout session and the cart.
func (s *service) PlaceOrder(ctx context.Context, cartID string) (*Order, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}

	snapshot, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Entries) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
	}

	session := s.loadSession(ctx, cartID)
	coupon := s.sessionCoupon(session)

	order := &Order{
		ID:             uuid.NewString(),
		CartID:         cartID,
		Entries:        snapshot.Entries,
		ShippingMethod: session.ShippingMethod,
		CouponCode:     session.CouponCode,
		Pricing:        pricing.Quote(snapshot.Subtotal, session.ShippingMethod, coupon),
		PlacedAt:       time.Now().UTC(),
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode order")
	}
	stored, err := s.sessions.SetNX(ctx, s.sessions.OrderHandoffKey(order.ID), payload, s.cfg.OrderTTL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store order")
	}
	if !stored {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order already exists")
	}

	if err := s.sessions.Del(ctx, s.sessions.CheckoutSessionKey(cartID)); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"cart_id": cartID, "error": err.Error()}), "checkout.session_cleanup_failed")
	}
	if _, _, err := s.carts.Clear(ctx, cartID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"cart_id": cartID, "error": err.Error()}), "checkout.cart_cleanup_failed")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"order_id": order.ID,
			"cart_id":  cartID,
			"total":    order.Pricing.Total,
		}), "checkout.order_placed")
	}
	return order, nil
}

// GetOrder loads a previously placed order hand-off payload.
func (s *service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	raw, err := s.sessions.Get(ctx, s.sessions.OrderHandoffKey(orderID))
	if err != nil {
		if redispkg.IsNil(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	var order Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode order")
	}
	return &order, nil
}

func (s *service) quoteFor(ctx context.Context, cartID string, session Session) (*Quote, error) {
	snapshot, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	coupon := s.sessionCoupon(session)

	return &Quote{
		Computation:    pricing.Quote(snapshot.Subtotal, session.ShippingMethod, coupon),
		ShippingMethod: session.ShippingMethod,
		Coupon:         coupon,
		ItemCount:      snapshot.Count,
		FreeDeliveryAt: pricing.CheckoutBannerPolicy.FreeAbove,
	}, nil
}

// sessionCoupon re-resolves the stored code so a coupon retired from the
// catalog silently drops instead of failing the quote.
func (s *service) sessionCoupon(session Session) *coupons.Coupon {
	if session.CouponCode == "" {
		return nil
	}
	coupon, err := s.catalog.Resolve(session.CouponCode)
	if err != nil {
		return nil
	}
	return coupon
}

func (s *service) loadSession(ctx context.Context, cartID string) Session {
	raw, err := s.sessions.Get(ctx, s.sessions.CheckoutSessionKey(cartID))
	if err != nil {
		if !redispkg.IsNil(err) && s.logg != nil {
			s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"cart_id": cartID, "error": err.Error()}), "checkout.session_load_failed")
		}
		return defaultSession()
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cart_id", cartID), "checkout.session_corrupt")
		}
		return defaultSession()
	}
	if !session.ShippingMethod.IsValid() {
		session.ShippingMethod = enums.ShippingMethodStandard
	}
	return session
}

func (s *service) saveSession(ctx context.Context, cartID string, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode checkout session")
	}
	if err := s.sessions.Set(ctx, s.sessions.CheckoutSessionKey(cartID), payload, s.cfg.SessionTTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store checkout session")
	}
	return nil
}
