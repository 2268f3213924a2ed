package worker

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/internal/domain/value"
)

type fakeStore struct {
	inserted []entity.HistoryRecord
	deleted  []string
}

func (s *fakeStore) Insert(_ context.Context, record *entity.HistoryRecord) error {
	s.inserted = append(s.inserted, *record)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestMirrorHandleInsert(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	base := int64(100_000)
	discount := int64(20_000)
	extra := 10.0

	input := entity.PricingInput{
		BasePrice:      &base,
		DiscountMode:   value.DiscountModeAmount,
		DiscountAmount: &discount,
		ExtraPercent:   &extra,
	}

	record := entity.HistoryRecord{
		ID:        "insert-1",
		Memo:      "dunk low",
		Input:     input,
		Result:    pricing.Evaluate(input),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	payload, err := json.Marshal(newInsertPayload(record))
	rq.NoError(err)

	store := &fakeStore{}
	mirror := NewMirror(store)

	rq.NoError(mirror.HandleInsert(ctx, asynq.NewTask(TaskHistoryInsert, payload)))
	rq.Len(store.inserted, 1)

	got := store.inserted[0]
	rq.Equal(record.ID, got.ID)
	rq.Equal(record.Memo, got.Memo)
	rq.Equal(record.CreatedAt, got.CreatedAt)

	// Результат восстановлен из входа на стороне обработчика.
	rq.InDelta(72_000, *got.Result.Final, 1e-9)
}

func TestMirrorHandleInsertBadPayload(t *testing.T) {
	rq := require.New(t)

	store := &fakeStore{}
	mirror := NewMirror(store)

	err := mirror.HandleInsert(context.Background(), asynq.NewTask(TaskHistoryInsert, []byte("{not json")))
	rq.Error(err)
	rq.Empty(store.inserted)
}

func TestMirrorHandleDelete(t *testing.T) {
	rq := require.New(t)

	payload, err := json.Marshal(deletePayload{ID: "delete-1"})
	rq.NoError(err)

	store := &fakeStore{}
	mirror := NewMirror(store)

	rq.NoError(mirror.HandleDelete(context.Background(), asynq.NewTask(TaskHistoryDelete, payload)))
	rq.Equal([]string{"delete-1"}, store.deleted)
}
