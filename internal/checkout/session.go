package checkout

import (
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
)

// Session is the transient checkout state for one cart. It lives in redis
// with a short TTL and is deliberately separate from the durable cart
// mirror: abandoning checkout must never disturb the cart itself.
type Session struct {
	ShippingMethod enums.ShippingMethod `json:"shipping_method"`
	CouponCode     string               `json:"coupon_code,omitempty"`
}

func defaultSession() Session {
	return Session{ShippingMethod: enums.ShippingMethodStandard}
}
