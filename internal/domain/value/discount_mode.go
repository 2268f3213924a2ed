package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"outlet_margin/pkg/errcodes"
)

// DiscountMode — способ задания первой скидки: абсолютная сумма или процент.
type DiscountMode string

const (
	DiscountModeAmount  DiscountMode = "amount"
	DiscountModePercent DiscountMode = "percent"
)

func (m DiscountMode) String() string {
	return string(m)
}

// ParseDiscountMode разбирает режим скидки. Пустая строка трактуется как
// amount (режим по умолчанию).
func ParseDiscountMode(s string) (DiscountMode, error) {
	switch DiscountMode(s) {
	case "", DiscountModeAmount:
		return DiscountModeAmount, nil
	case DiscountModePercent:
		return DiscountModePercent, nil
	}

	return "", failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown discount mode %q", s),
		failure.WithCode(errcodes.InvalidDiscountMode),
		failure.WithDescription("discount mode must be amount or percent"),
	)
}
