package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Missing — плейсхолдер для отсутствующих значений.
const Missing = "-"

const wonSuffix = "원"

// Display рендерит значение с группировкой тысяч, округляя до целого.
// Отсутствующее или некорректное значение рендерится как Missing.
func Display(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Missing
	}

	return humanize.Comma(int64(math.Round(*v)))
}

// DisplayWon — Display с валютным суффиксом.
func DisplayWon(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Missing
	}

	return Display(v) + wonSuffix
}

// GroupDigits выбрасывает из свободного текста всё, кроме цифр, и заново
// группирует тысячи. Пустой ввод остаётся пустой строкой.
func GroupDigits(raw string) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return ""
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}

	return humanize.Comma(n)
}

// ParseAmount парсит свободный текст как целое число вон.
// Текст без цифр — это отсутствие значения, а не ноль.
func ParseAmount(raw string) *int64 {
	digits := digitsOnly(raw)
	if digits == "" {
		return nil
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}

	return &n
}

func digitsOnly(raw string) string {
	var b strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
