package pricing

import (
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/coupons"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
)

// Flat delivery tiers in whole currency units.
const (
	StandardDeliveryFee = 30
	ExpressDeliveryFee  = 60
)

// MaxPercentageDiscount caps percentage coupons in the capped quote variant.
const MaxPercentageDiscount = 500

// Computation carries the derived checkout amounts. It is recomputed from its
// inputs on every call and is never a source of truth.
type Computation struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Discount    int `json:"discount"`
	Total       int `json:"total"`
}

// Quote derives the checkout amounts from the cart subtotal, the selected
// shipping method and an optional coupon. Percentage discounts truncate
// toward zero; fixed discounts apply verbatim, so a fixed coupon larger than
// the order can drive the total negative. That matches the storefront's
// observed behavior and is deliberately not clamped here.
func Quote(subtotal int, method enums.ShippingMethod, coupon *coupons.Coupon) Computation {
	baseFee := baseDeliveryFee(method)

	fee := baseFee
	if coupon != nil && coupon.Kind == enums.CouponKindFreeShipping {
		fee = 0
	}

	discount := 0
	if coupon != nil {
		switch coupon.Kind {
		case enums.CouponKindPercentage:
			discount = subtotal * coupon.Amount / 100
		case enums.CouponKindFixed:
			discount = coupon.Amount
		case enums.CouponKindFreeShipping:
			discount = baseFee
		}
	}

	return Computation{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       subtotal + fee - discount,
	}
}

// QuoteCapped is the variant used on surfaces that limit percentage discounts
// to MaxPercentageDiscount currency units.
func QuoteCapped(subtotal int, method enums.ShippingMethod, coupon *coupons.Coupon) Computation {
	comp := Quote(subtotal, method, coupon)
	if coupon != nil && coupon.Kind == enums.CouponKindPercentage && comp.Discount > MaxPercentageDiscount {
		over := comp.Discount - MaxPercentageDiscount
		comp.Discount = MaxPercentageDiscount
		comp.Total += over
	}
	return comp
}

func baseDeliveryFee(method enums.ShippingMethod) int {
	if method == enums.ShippingMethodExpress {
		return ExpressDeliveryFee
	}
	return StandardDeliveryFee
}
