package enums

import "fmt"

// CouponKind is the closed set of discount strategies a coupon can carry.
type CouponKind string

const (
	CouponKindPercentage   CouponKind = "percentage"
	CouponKindFixed        CouponKind = "fixed"
	CouponKindFreeShipping CouponKind = "free_shipping"
)

var validCouponKinds = []CouponKind{
	CouponKindPercentage,
	CouponKindFixed,
	CouponKindFreeShipping,
}

// String implements fmt.Stringer.
func (k CouponKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known CouponKind.
func (k CouponKind) IsValid() bool {
	for _, candidate := range validCouponKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseCouponKind converts raw input into a CouponKind.
func ParseCouponKind(value string) (CouponKind, error) {
	for _, candidate := range validCouponKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid coupon kind %q", value)
}
