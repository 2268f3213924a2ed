package persistence

import (
	"database/sql"
	"time"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/internal/domain/value"
)

// historySchema — маппинг строки таблицы calc_history.
// Производные значения (final, refund10, *_net) денормализованы в строку
// только для просмотра из БД; доменная запись при чтении пересчитывается
// из входных колонок, потому что результат — чистая функция входа.
type historySchema struct {
	ID                  string         `db:"id"`
	Memo                sql.NullString `db:"memo"`
	BasePrice           *int64         `db:"base_price"`
	DiscountMode        string         `db:"discount_mode"`
	BaseDiscountAmount  *int64         `db:"base_discount_amount"`
	BaseDiscountPercent *float64       `db:"base_discount_percent"`
	Extra               *float64       `db:"extra"`
	Final               *float64       `db:"final"`
	Refund10            *float64       `db:"refund10"`
	KreamPrice          *int64         `db:"kream_price"`
	KreamNet            *float64       `db:"kream_net"`
	PoizonPrice         *int64         `db:"poizon_price"`
	PoizonNet           *float64       `db:"poizon_net"`
	CreatedAt           time.Time      `db:"created_at"`
}

func fromRecord(r *entity.HistoryRecord) *historySchema {
	return &historySchema{
		ID:                  r.ID,
		Memo:                sql.NullString{String: r.Memo, Valid: r.Memo != ""},
		BasePrice:           r.Input.BasePrice,
		DiscountMode:        r.Input.DiscountMode.String(),
		BaseDiscountAmount:  r.Input.DiscountAmount,
		BaseDiscountPercent: r.Input.DiscountPercent,
		Extra:               r.Input.ExtraPercent,
		Final:               r.Result.Final,
		Refund10:            r.Result.Tax,
		KreamPrice:          r.Input.KreamPrice,
		KreamNet:            r.Result.Kream.Net,
		PoizonPrice:         r.Input.PoizonPrice,
		PoizonNet:           r.Result.Poizon.Net,
		CreatedAt:           r.CreatedAt,
	}
}

func (s *historySchema) toDomain() (entity.HistoryRecord, error) {
	mode, err := value.ParseDiscountMode(s.DiscountMode)
	if err != nil {
		return entity.HistoryRecord{}, err
	}

	input := entity.PricingInput{
		BasePrice:       s.BasePrice,
		DiscountMode:    mode,
		DiscountAmount:  s.BaseDiscountAmount,
		DiscountPercent: s.BaseDiscountPercent,
		ExtraPercent:    s.Extra,
		KreamPrice:      s.KreamPrice,
		PoizonPrice:     s.PoizonPrice,
	}

	return entity.HistoryRecord{
		ID:        s.ID,
		Memo:      s.Memo.String,
		Input:     input,
		Result:    pricing.Evaluate(input),
		CreatedAt: s.CreatedAt,
	}, nil
}
