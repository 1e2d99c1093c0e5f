package checkout

// QuoteRequest carries the optional session overrides for a quote.
type QuoteRequest struct {
	ShippingMethod *string `json:"shipping_method,omitempty" validate:"omitempty,oneof=standard express"`
	CouponCode     *string `json:"coupon_code,omitempty"`
}

// ApplyCouponRequest applies a coupon code to the checkout session.
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}
