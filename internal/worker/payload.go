package worker

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Имена задач и очередь зеркала истории.
const (
	TaskHistoryInsert = "history:insert"
	TaskHistoryDelete = "history:delete"

	QueueHistory = "history"
)

// insertPayload переносит через очередь только вход и метаданные записи:
// результат — чистая функция входа и восстанавливается на стороне обработчика.
type insertPayload struct {
	ID              string    `json:"id"`
	Memo            string    `json:"memo"`
	BasePrice       *int64    `json:"basePrice"`
	DiscountMode    string    `json:"discountMode"`
	DiscountAmount  *int64    `json:"discountAmount"`
	DiscountPercent *float64  `json:"discountPercent"`
	ExtraPercent    *float64  `json:"extraPercent"`
	KreamPrice      *int64    `json:"kreamPrice"`
	PoizonPrice     *int64    `json:"poizonPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

type deletePayload struct {
	ID string `json:"id"`
}

func newInsertPayload(r entity.HistoryRecord) insertPayload {
	return insertPayload{
		ID:              r.ID,
		Memo:            r.Memo,
		BasePrice:       r.Input.BasePrice,
		DiscountMode:    r.Input.DiscountMode.String(),
		DiscountAmount:  r.Input.DiscountAmount,
		DiscountPercent: r.Input.DiscountPercent,
		ExtraPercent:    r.Input.ExtraPercent,
		KreamPrice:      r.Input.KreamPrice,
		PoizonPrice:     r.Input.PoizonPrice,
		CreatedAt:       r.CreatedAt,
	}
}

func (p insertPayload) toRecord() (entity.HistoryRecord, error) {
	mode, err := value.ParseDiscountMode(p.DiscountMode)
	if err != nil {
		return entity.HistoryRecord{}, err
	}

	input := entity.PricingInput{
		BasePrice:       p.BasePrice,
		DiscountMode:    mode,
		DiscountAmount:  p.DiscountAmount,
		DiscountPercent: p.DiscountPercent,
		ExtraPercent:    p.ExtraPercent,
		KreamPrice:      p.KreamPrice,
		PoizonPrice:     p.PoizonPrice,
	}

	return entity.HistoryRecord{
		ID:        p.ID,
		Memo:      p.Memo,
		Input:     input,
		Result:    pricing.Evaluate(input),
		CreatedAt: p.CreatedAt,
	}, nil
}
