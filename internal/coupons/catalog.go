package coupons

import (
	"strings"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
)

// Coupon is a named discount rule. Amount is whole currency units for fixed
// coupons and a percentage for percentage coupons; it carries no meaning for
// free-shipping coupons.
type Coupon struct {
	Code        string           `json:"code"`
	Kind        enums.CouponKind `json:"kind"`
	Amount      int              `json:"amount"`
	Description string           `json:"description"`
}

// Catalog resolves coupon codes against a fixed rule set.
type Catalog struct {
	byCode map[string]Coupon
}

// NewCatalog builds a catalog over the provided rules. Codes are matched
// case-insensitively; later duplicates win.
func NewCatalog(rules []Coupon) *Catalog {
	byCode := make(map[string]Coupon, len(rules))
	for _, rule := range rules {
		byCode[normalizeCode(rule.Code)] = rule
	}
	return &Catalog{byCode: byCode}
}

// DefaultCatalog returns the storefront's static coupon set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Coupon{
		{Code: "FRESH10", Kind: enums.CouponKindPercentage, Amount: 10, Description: "10% off your order"},
		{Code: "SABJI20", Kind: enums.CouponKindPercentage, Amount: 20, Description: "20% off your order"},
		{Code: "VEGGIE50", Kind: enums.CouponKindFixed, Amount: 50, Description: "Flat 50 off"},
		{Code: "FREESHIP", Kind: enums.CouponKindFreeShipping, Description: "Free delivery"},
	})
}

// Resolve looks up a coupon by code. The match trims surrounding whitespace
// and ignores case; a miss returns a validation error and no coupon.
func (c *Catalog) Resolve(code string) (*Coupon, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon code is required")
	}
	rule, ok := c.byCode[normalized]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid coupon")
	}
	return &rule, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
