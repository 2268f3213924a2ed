package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/internal/domain/value"
	"outlet_margin/pkg/tests"
)

func TestFirstDiscounted(t *testing.T) {
	testCases := []struct {
		name    string
		base    *int64
		mode    value.DiscountMode
		amount  *int64
		percent *float64
		want    *float64
	}{
		{
			name:   "amount mode subtracts discount",
			base:   iptr(100_000),
			mode:   value.DiscountModeAmount,
			amount: iptr(20_000),
			want:   fptr(80_000),
		},
		{
			name: "missing amount means no discount",
			base: iptr(100_000),
			mode: value.DiscountModeAmount,
			want: fptr(100_000),
		},
		{
			name:   "amount above base clamps to zero",
			base:   iptr(50_000),
			mode:   value.DiscountModeAmount,
			amount: iptr(70_000),
			want:   fptr(0),
		},
		{
			name:   "negative amount clamps to no discount",
			base:   iptr(50_000),
			mode:   value.DiscountModeAmount,
			amount: iptr(-10_000),
			want:   fptr(50_000),
		},
		{
			name:    "percent mode",
			base:    iptr(100_000),
			mode:    value.DiscountModePercent,
			percent: fptr(25),
			want:    fptr(75_000),
		},
		{
			name:    "percent above 100 clamps to 100",
			base:    iptr(100_000),
			mode:    value.DiscountModePercent,
			percent: fptr(150),
			want:    fptr(0),
		},
		{
			name:    "negative percent clamps to no discount",
			base:    iptr(100_000),
			mode:    value.DiscountModePercent,
			percent: fptr(-5),
			want:    fptr(100_000),
		},
		{
			name:   "missing base propagates as missing",
			mode:   value.DiscountModeAmount,
			amount: iptr(20_000),
			want:   nil,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := pricing.FirstDiscounted(tc.base, tc.mode, tc.amount, tc.percent)

			if tc.want == nil {
				rq.Nil(got)
				return
			}

			rq.NotNil(got)
			rq.InDelta(*tc.want, *got, 1e-9)
		})
	}
}

func TestExtraDiscounted(t *testing.T) {
	rq := require.New(t)

	rq.Nil(pricing.ExtraDiscounted(nil, fptr(10)))

	got := pricing.ExtraDiscounted(fptr(80_000), fptr(10))
	rq.NotNil(got)
	rq.InDelta(72_000, *got, 1e-9)

	// Отсутствие дополнительной скидки не меняет цену.
	got = pricing.ExtraDiscounted(fptr(80_000), nil)
	rq.NotNil(got)
	rq.InDelta(80_000, *got, 1e-9)
}

func TestTaxAndAfterTax(t *testing.T) {
	rq := require.New(t)

	rq.Nil(pricing.Tax(nil))
	rq.Nil(pricing.AfterTax(nil))

	tax := pricing.Tax(fptr(72_000))
	rq.NotNil(tax)
	rq.InDelta(7_200, *tax, 1e-9)

	afterTax := pricing.AfterTax(fptr(72_000))
	rq.NotNil(afterTax)
	rq.InDelta(64_800, *afterTax, 1e-9)
}

func TestKreamSettlement(t *testing.T) {
	rq := require.New(t)

	empty := pricing.KreamSettlement(nil)
	rq.Nil(empty.Fee)
	rq.Nil(empty.Net)

	s := pricing.KreamSettlement(iptr(65_000))
	rq.NotNil(s.Net)
	rq.NotNil(s.Fee)
	rq.InDelta(56_640, *s.Net, 1e-9)
	rq.InDelta(8_360, *s.Fee, 1e-9)
}

func TestPoizonSettlement(t *testing.T) {
	testCases := []struct {
		name    string
		price   int64
		wantNet float64
	}{
		{name: "below low cap uses flat low fee", price: 66_000, wantNet: 51_000},
		{name: "exactly at low cap uses flat low fee", price: 150_000, wantNet: 135_000},
		{name: "just above low cap switches to rate", price: 150_001, wantNet: 135_000.9},
		{name: "middle band uses rate", price: 300_000, wantNet: 270_000},
		{name: "just below high cap uses rate", price: 449_999, wantNet: 404_999.1},
		{name: "exactly at high cap uses flat high fee", price: 450_000, wantNet: 405_000},
		{name: "above high cap uses flat high fee", price: 1_000_000, wantNet: 955_000},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			s := pricing.PoizonSettlement(iptr(tc.price))
			rq.NotNil(s.Net)
			rq.InDelta(tc.wantNet, *s.Net, 1e-9)
		})
	}
}

// Fee и Net любой площадки в сумме дают выставленную цену.
func TestSettlementFeeNetComplementary(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for i := 0; i < 200; i++ {
		price := int64(random.Float64() * 2_000_000)

		kream := pricing.KreamSettlement(&price)
		rq.InDelta(float64(price), *kream.Fee+*kream.Net, 1e-6)

		poizon := pricing.PoizonSettlement(&price)
		rq.InDelta(float64(price), *poizon.Fee+*poizon.Net, 1e-6)
	}
}

func TestMargin(t *testing.T) {
	rq := require.New(t)

	rq.Nil(pricing.Margin(nil, fptr(72_000), nil))
	rq.Nil(pricing.Margin(fptr(56_640), nil, nil))

	got := pricing.Margin(fptr(56_640), fptr(72_000), nil)
	rq.NotNil(got)
	rq.InDelta(-15_360, *got, 1e-9)

	got = pricing.Margin(fptr(51_000), fptr(72_000), fptr(7_200))
	rq.NotNil(got)
	rq.InDelta(-13_800, *got, 1e-9)
}

func TestMarginPercent(t *testing.T) {
	rq := require.New(t)

	rq.Nil(pricing.MarginPercent(nil, fptr(72_000)))

	got := pricing.MarginPercent(fptr(-13_800), fptr(72_000))
	rq.NotNil(got)
	rq.InDelta(-19.1666666667, *got, 1e-6)

	// Нулевая финальная цена не приводит к делению на ноль.
	got = pricing.MarginPercent(fptr(500), fptr(0))
	rq.NotNil(got)
	rq.InDelta(50_000, *got, 1e-9)

	got = pricing.MarginPercent(fptr(500), nil)
	rq.NotNil(got)
	rq.InDelta(50_000, *got, 1e-9)
}

func TestEvaluate(t *testing.T) {
	t.Run("full scenario", func(t *testing.T) {
		rq := require.New(t)

		result := pricing.Evaluate(entity.PricingInput{
			BasePrice:      iptr(100_000),
			DiscountMode:   value.DiscountModeAmount,
			DiscountAmount: iptr(20_000),
			ExtraPercent:   fptr(10),
			KreamPrice:     iptr(65_000),
			PoizonPrice:    iptr(66_000),
		})

		rq.InDelta(80_000, *result.FirstDiscounted, 1e-9)
		rq.InDelta(72_000, *result.Final, 1e-9)
		rq.InDelta(7_200, *result.Tax, 1e-9)
		rq.InDelta(64_800, *result.AfterTax, 1e-9)

		rq.InDelta(56_640, *result.Kream.Net, 1e-9)
		rq.InDelta(8_360, *result.Kream.Fee, 1e-9)
		rq.InDelta(-15_360, *result.Kream.Margin, 1e-9)

		rq.InDelta(51_000, *result.Poizon.Net, 1e-9)
		rq.InDelta(15_000, *result.Poizon.Fee, 1e-9)
		// Poizon компенсирует налог, поэтому его маржа выше кримовской.
		rq.InDelta(-13_800, *result.Poizon.Margin, 1e-9)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		rq := require.New(t)

		result := pricing.Evaluate(entity.PricingInput{})

		rq.Nil(result.FirstDiscounted)
		rq.Nil(result.Final)
		rq.Nil(result.Tax)
		rq.Nil(result.AfterTax)
		rq.Nil(result.Kream.Net)
		rq.Nil(result.Kream.Margin)
		rq.Nil(result.Poizon.Net)
		rq.Nil(result.Poizon.Margin)
	})

	t.Run("platform quotes work without base price", func(t *testing.T) {
		rq := require.New(t)

		result := pricing.Evaluate(entity.PricingInput{KreamPrice: iptr(65_000)})

		rq.Nil(result.Final)
		rq.InDelta(56_640, *result.Kream.Net, 1e-9)
		rq.Nil(result.Kream.Margin)
	})
}

func fptr(v float64) *float64 {
	return &v
}

func iptr(v int64) *int64 {
	return &v
}
