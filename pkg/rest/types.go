// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// QuoteRequest — входные данные расчёта. Ценовые поля принимаются как
// свободный текст ("1,290,000" и т.п.), проценты — числами.
type QuoteRequest struct {
	BasePrice       string   `json:"basePrice"`
	DiscountMode    string   `json:"discountMode"`
	DiscountAmount  string   `json:"discountAmount"`
	DiscountPercent *float64 `json:"discountPercent"`
	ExtraPercent    *float64 `json:"extraPercent"`
	KreamPrice      string   `json:"kreamPrice"`
	PoizonPrice     string   `json:"poizonPrice"`
}

// Amount — числовое значение вместе с готовой строкой для отображения.
type Amount struct {
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

// PlatformQuote — расчёт выплаты площадки.
type PlatformQuote struct {
	Fee           Amount `json:"fee"`
	Net           Amount `json:"net"`
	Margin        Amount `json:"margin"`
	MarginPercent Amount `json:"marginPercent"`
}

type QuoteResponse struct {
	FirstDiscounted Amount        `json:"firstDiscounted"`
	Final           Amount        `json:"final"`
	Tax             Amount        `json:"tax"`
	AfterTax        Amount        `json:"afterTax"`
	Kream           PlatformQuote `json:"kream"`
	Poizon          PlatformQuote `json:"poizon"`
}

// PricingInput — сохранённый снимок входных данных (уже распарсенных).
type PricingInput struct {
	BasePrice       *int64   `json:"basePrice"`
	DiscountMode    string   `json:"discountMode"`
	DiscountAmount  *int64   `json:"discountAmount"`
	DiscountPercent *float64 `json:"discountPercent"`
	ExtraPercent    *float64 `json:"extraPercent"`
	KreamPrice      *int64   `json:"kreamPrice"`
	PoizonPrice     *int64   `json:"poizonPrice"`
}

type SaveHistoryRequest struct {
	Memo  string       `json:"memo"`
	Input QuoteRequest `json:"input"`
}

type HistoryRecord struct {
	ID        string        `json:"id"`
	Memo      string        `json:"memo"`
	Input     PricingInput  `json:"input"`
	Result    QuoteResponse `json:"result"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ListHistoryResponse struct {
	Records []HistoryRecord `json:"records"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
