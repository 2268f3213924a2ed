package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/internal/domain/value"
	"outlet_margin/pkg/numfmt"
)

// go run cmd/quote/main.go -base 1,290,000 -mode amount -discount 200000 -extra 10 -kream 950000 -poizon 960000
//
// Разовый расчёт без сервера и хранилища: все флаги — свободный текст,
// пустой флаг означает отсутствие значения.

func main() {
	var (
		base     = flag.String("base", "", "retail base price, free text")
		mode     = flag.String("mode", "", "discount mode: amount|percent")
		discount = flag.String("discount", "", "first discount amount, free text")
		percent  = flag.String("percent", "", "first discount percent")
		extra    = flag.String("extra", "", "extra discount percent")
		kream    = flag.String("kream", "", "Kream listing price, free text")
		poizon   = flag.String("poizon", "", "Poizon listing price, free text")
	)
	flag.Parse()

	discountMode, err := value.ParseDiscountMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -mode:", err)
		os.Exit(1)
	}

	input := entity.PricingInput{
		BasePrice:       numfmt.ParseAmount(*base),
		DiscountMode:    discountMode,
		DiscountAmount:  numfmt.ParseAmount(*discount),
		DiscountPercent: parsePercent(*percent),
		ExtraPercent:    parsePercent(*extra),
		KreamPrice:      numfmt.ParseAmount(*kream),
		PoizonPrice:     numfmt.ParseAmount(*poizon),
	}

	result := pricing.Evaluate(input)

	fmt.Println("first discounted:", numfmt.DisplayWon(result.FirstDiscounted))
	fmt.Println("final:           ", numfmt.DisplayWon(result.Final))
	fmt.Println("tax (10%):       ", numfmt.DisplayWon(result.Tax))
	fmt.Println("after tax:       ", numfmt.DisplayWon(result.AfterTax))
	fmt.Println()
	printPlatform("kream", result.Kream)
	printPlatform("poizon", result.Poizon)
}

func printPlatform(name string, quote entity.PlatformQuote) {
	fmt.Printf("%s: net %s, fee %s, margin %s (%s)\n",
		name,
		numfmt.DisplayWon(quote.Net),
		numfmt.DisplayWon(quote.Fee),
		numfmt.DisplayWon(quote.Margin),
		displayPercent(quote.MarginPercent),
	)
}

func parsePercent(raw string) *float64 {
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}

func displayPercent(v *float64) string {
	if v == nil {
		return numfmt.Missing
	}

	return fmt.Sprintf("%.1f%%", *v)
}
