package entity

import (
	"outlet_margin/internal/domain/value"
)

// PricingInput — входные данные расчёта. Отсутствующее значение — это nil,
// а не ноль: невведённая цена площадки не равна цене в ноль вон.
type PricingInput struct {
	BasePrice       *int64
	DiscountMode    value.DiscountMode
	DiscountAmount  *int64
	DiscountPercent *float64
	ExtraPercent    *float64
	KreamPrice      *int64
	PoizonPrice     *int64
}

// PlatformQuote — производные значения по одной площадке.
type PlatformQuote struct {
	Fee           *float64
	Net           *float64
	Margin        *float64
	MarginPercent *float64
}

// PricingResult целиком выводится из PricingInput; ни одно поле не живёт
// отдельной жизнью.
type PricingResult struct {
	FirstDiscounted *float64
	Final           *float64
	Tax             *float64
	AfterTax        *float64
	Kream           PlatformQuote
	Poizon          PlatformQuote
}
