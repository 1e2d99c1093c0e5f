package pricing

import (
	"testing"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/coupons"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
)

func TestQuoteWithoutCoupon(t *testing.T) {
	t.Parallel()

	comp := Quote(500, enums.ShippingMethodStandard, nil)
	if comp.DeliveryFee != StandardDeliveryFee {
		t.Fatalf("expected standard fee %d, got %d", StandardDeliveryFee, comp.DeliveryFee)
	}
	if comp.Discount != 0 {
		t.Fatalf("expected no discount, got %d", comp.Discount)
	}
	if comp.Total != 530 {
		t.Fatalf("expected total 530, got %d", comp.Total)
	}

	express := Quote(500, enums.ShippingMethodExpress, nil)
	if express.DeliveryFee != ExpressDeliveryFee || express.Total != 560 {
		t.Fatalf("unexpected express computation %+v", express)
	}
}

func TestQuotePercentageDiscountFloors(t *testing.T) {
	t.Parallel()

	coupon := &coupons.Coupon{Code: "SABJI20", Kind: enums.CouponKindPercentage, Amount: 20}
	comp := Quote(500, enums.ShippingMethodStandard, coupon)
	if comp.Discount != 100 {
		t.Fatalf("expected discount 100, got %d", comp.Discount)
	}
	if comp.DeliveryFee != 30 {
		t.Fatalf("expected delivery fee 30, got %d", comp.DeliveryFee)
	}
	if comp.Total != 430 {
		t.Fatalf("expected total 430, got %d", comp.Total)
	}

	// Truncating division, never round-to-nearest.
	odd := Quote(99, enums.ShippingMethodStandard, &coupons.Coupon{Kind: enums.CouponKindPercentage, Amount: 10})
	if odd.Discount != 9 {
		t.Fatalf("expected floored discount 9, got %d", odd.Discount)
	}
}

func TestQuoteFreeShippingReportsWaivedFee(t *testing.T) {
	t.Parallel()

	coupon := &coupons.Coupon{Code: "FREESHIP", Kind: enums.CouponKindFreeShipping}

	comp := Quote(500, enums.ShippingMethodStandard, coupon)
	if comp.DeliveryFee != 0 {
		t.Fatalf("expected waived fee, got %d", comp.DeliveryFee)
	}
	if comp.Discount != StandardDeliveryFee {
		t.Fatalf("expected discount equal to waived base fee, got %d", comp.Discount)
	}
	if comp.Total != 470 {
		t.Fatalf("expected total 470, got %d", comp.Total)
	}

	express := Quote(500, enums.ShippingMethodExpress, coupon)
	if express.Discount != ExpressDeliveryFee || express.Total != 440 {
		t.Fatalf("unexpected express computation %+v", express)
	}
}

func TestQuoteFixedDiscountAppliesVerbatim(t *testing.T) {
	t.Parallel()

	coupon := &coupons.Coupon{Code: "VEGGIE50", Kind: enums.CouponKindFixed, Amount: 50}
	comp := Quote(200, enums.ShippingMethodStandard, coupon)
	if comp.Discount != 50 || comp.Total != 180 {
		t.Fatalf("unexpected computation %+v", comp)
	}

	// A fixed discount larger than the order is not clamped.
	oversized := Quote(40, enums.ShippingMethodStandard, &coupons.Coupon{Kind: enums.CouponKindFixed, Amount: 100})
	if oversized.Total != -30 {
		t.Fatalf("expected unclamped total -30, got %d", oversized.Total)
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	t.Parallel()

	coupon := &coupons.Coupon{Kind: enums.CouponKindPercentage, Amount: 15}
	first := Quote(777, enums.ShippingMethodExpress, coupon)
	for i := 0; i < 5; i++ {
		if got := Quote(777, enums.ShippingMethodExpress, coupon); got != first {
			t.Fatalf("quote not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestQuoteCappedLimitsPercentageDiscount(t *testing.T) {
	t.Parallel()

	coupon := &coupons.Coupon{Kind: enums.CouponKindPercentage, Amount: 20}

	comp := QuoteCapped(5000, enums.ShippingMethodStandard, coupon)
	if comp.Discount != MaxPercentageDiscount {
		t.Fatalf("expected capped discount %d, got %d", MaxPercentageDiscount, comp.Discount)
	}
	if comp.Total != 5000+StandardDeliveryFee-MaxPercentageDiscount {
		t.Fatalf("unexpected capped total %d", comp.Total)
	}

	// Below the cap the variants agree.
	small := QuoteCapped(500, enums.ShippingMethodStandard, coupon)
	if small != Quote(500, enums.ShippingMethodStandard, coupon) {
		t.Fatalf("capped variant diverged below the cap: %+v", small)
	}

	// Fixed coupons are never capped.
	fixed := QuoteCapped(5000, enums.ShippingMethodStandard, &coupons.Coupon{Kind: enums.CouponKindFixed, Amount: 900})
	if fixed.Discount != 900 {
		t.Fatalf("fixed discount should not be capped, got %d", fixed.Discount)
	}
}
