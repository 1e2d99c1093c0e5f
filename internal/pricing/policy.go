package pricing

// ThresholdPolicy is the coupon-independent free-delivery rule used on cart
// surfaces before checkout: delivery is free once the subtotal meets the
// threshold, otherwise the flat fee applies.
type ThresholdPolicy struct {
	FreeAbove int
	Fee       int
}

// The storefront ships two threshold policies that were never reconciled.
// They stay distinct on purpose; collapsing them would silently change one of
// the two surfaces.
var (
	// CartSummaryPolicy backs the cart page summary.
	CartSummaryPolicy = ThresholdPolicy{FreeAbove: 200, Fee: StandardDeliveryFee}
	// CheckoutBannerPolicy backs the free-delivery banner on checkout.
	CheckoutBannerPolicy = ThresholdPolicy{FreeAbove: 300, Fee: StandardDeliveryFee}
)

// DeliveryFee returns the fee owed for the given subtotal under this policy.
func (p ThresholdPolicy) DeliveryFee(subtotal int) int {
	if subtotal >= p.FreeAbove {
		return 0
	}
	return p.Fee
}

// Remaining returns how much more the shopper must add to earn free delivery,
// or zero when the threshold is already met.
func (p ThresholdPolicy) Remaining(subtotal int) int {
	if subtotal >= p.FreeAbove {
		return 0
	}
	return p.FreeAbove - subtotal
}
