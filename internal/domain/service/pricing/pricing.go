package pricing

import (
	"math"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/value"
)

// Константы формул. Комиссии площадок фиксированы, версионирование формул
// не поддерживается.
const (
	taxRate = 0.10

	kreamNetRate = 0.956
	kreamFlatFee = 5500.0

	poizonLowCap  = 150_000.0
	poizonLowFee  = 15_000.0
	poizonHighCap = 450_000.0
	poizonHighFee = 45_000.0
	poizonNetRate = 0.9
)

// Settlement — выплата площадки по выставленной цене.
// Fee и Net взаимодополняющие: fee + net == price.
type Settlement struct {
	Fee *float64
	Net *float64
}

// FirstDiscounted применяет первую скидку к розничной цене.
// В режиме amount скидка зажимается в [0, base], результат не ниже нуля;
// в режиме percent процент зажимается в [0, 100].
// Отсутствующая базовая цена распространяется дальше как nil.
func FirstDiscounted(base *int64, mode value.DiscountMode, amount *int64, percent *float64) *float64 {
	if base == nil {
		return nil
	}

	b := float64(*base)

	if mode == value.DiscountModePercent {
		p := clamp(deref(percent), 0, 100)
		return ptr(b * (1 - p/100))
	}

	a := clamp(float64(derefInt(amount)), 0, b)

	return ptr(math.Max(0, b-a))
}

// ExtraDiscounted применяет дополнительную процентную скидку.
func ExtraDiscounted(price *float64, extraPercent *float64) *float64 {
	if price == nil {
		return nil
	}

	p := clamp(deref(extraPercent), 0, 100)

	return ptr(*price * (1 - p/100))
}

// Tax — фиксированные 10% от финальной цены (refund10).
func Tax(final *float64) *float64 {
	if final == nil {
		return nil
	}

	return ptr(*final * taxRate)
}

// AfterTax — финальная цена за вычетом налога, не ниже нуля.
func AfterTax(final *float64) *float64 {
	if final == nil {
		return nil
	}

	return ptr(math.Max(0, *final-*final*taxRate))
}

// KreamSettlement: net = price*0.956 - 5500.
func KreamSettlement(price *int64) Settlement {
	if price == nil {
		return Settlement{}
	}

	p := float64(*price)
	net := p*kreamNetRate - kreamFlatFee

	return Settlement{Fee: ptr(p - net), Net: ptr(net)}
}

// PoizonSettlement — кусочная комиссия Poizon: до 150 000 — фикс 15 000,
// от 450 000 — фикс 45 000, между ними — 10% от цены.
func PoizonSettlement(price *int64) Settlement {
	if price == nil {
		return Settlement{}
	}

	p := float64(*price)

	var net float64

	switch {
	case p <= poizonLowCap:
		net = p - poizonLowFee
	case p >= poizonHighCap:
		net = p - poizonHighFee
	default:
		net = p * poizonNetRate
	}

	return Settlement{Fee: ptr(p - net), Net: ptr(net)}
}

// Margin — выплата площадки минус собственная финальная цена покупки,
// плюс налоговая компенсация, если площадка её выплачивает.
func Margin(net, final, taxBack *float64) *float64 {
	if net == nil || final == nil {
		return nil
	}

	return ptr(*net - *final + deref(taxBack))
}

// MarginPercent — маржа в процентах от финальной цены. Нулевая финальная
// цена считается единицей, чтобы не делить на ноль.
func MarginPercent(margin, final *float64) *float64 {
	if margin == nil {
		return nil
	}

	divisor := 1.0
	if final != nil && *final != 0 {
		divisor = *final
	}

	return ptr(*margin / divisor * 100)
}

// Evaluate — холодный полный расчёт результата по входным данным.
// Функция чистая и тотальная: ни одна комбинация входов не даёт ошибку,
// некорректные значения зажимаются, отсутствующие распространяются как nil.
func Evaluate(in entity.PricingInput) entity.PricingResult {
	first := FirstDiscounted(in.BasePrice, in.DiscountMode, in.DiscountAmount, in.DiscountPercent)
	final := ExtraDiscounted(first, in.ExtraPercent)
	tax := Tax(final)
	afterTax := AfterTax(final)

	kream := KreamSettlement(in.KreamPrice)
	kreamMargin := Margin(kream.Net, final, nil)

	// Poizon компенсирует продавцу налог при выплате, Kream — нет.
	poizon := PoizonSettlement(in.PoizonPrice)
	poizonMargin := Margin(poizon.Net, final, tax)

	return entity.PricingResult{
		FirstDiscounted: first,
		Final:           final,
		Tax:             tax,
		AfterTax:        afterTax,
		Kream: entity.PlatformQuote{
			Fee:           kream.Fee,
			Net:           kream.Net,
			Margin:        kreamMargin,
			MarginPercent: MarginPercent(kreamMargin, final),
		},
		Poizon: entity.PlatformQuote{
			Fee:           poizon.Fee,
			Net:           poizon.Net,
			Margin:        poizonMargin,
			MarginPercent: MarginPercent(poizonMargin, final),
		},
	}
}

func clamp(v, low, high float64) float64 {
	return math.Min(high, math.Max(low, v))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}

func ptr(v float64) *float64 {
	return &v
}
