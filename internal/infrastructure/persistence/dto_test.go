package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/internal/domain/value"
)

func TestHistorySchemaToDomain(t *testing.T) {
	rq := require.New(t)

	base := int64(100_000)
	discount := int64(20_000)
	extra := 10.0
	poizon := int64(66_000)

	input := entity.PricingInput{
		BasePrice:      &base,
		DiscountMode:   value.DiscountModeAmount,
		DiscountAmount: &discount,
		ExtraPercent:   &extra,
		PoizonPrice:    &poizon,
	}

	record := entity.HistoryRecord{
		ID:        "rec-1",
		Memo:      "dunk low",
		Input:     input,
		Result:    pricing.Evaluate(input),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	got, err := fromRecord(&record).toDomain()
	rq.NoError(err)

	rq.Equal(record.ID, got.ID)
	rq.Equal(record.Memo, got.Memo)
	rq.Equal(record.Input, got.Input)
	rq.Equal(record.CreatedAt, got.CreatedAt)

	// Производные колонки в строке лишь денормализация: доменный результат
	// пересчитывается из входных и совпадает с исходным.
	rq.Equal(record.Result, got.Result)
}

func TestHistorySchemaUnknownMode(t *testing.T) {
	rq := require.New(t)

	s := historySchema{ID: "rec-2", DiscountMode: "bogus"}

	_, err := s.toDomain()
	rq.Error(err)
}
