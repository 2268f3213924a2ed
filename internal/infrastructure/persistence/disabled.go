package persistence

import (
	"context"

	"outlet_margin/internal/domain"
	"outlet_margin/internal/domain/entity"
	"outlet_margin/pkg/errcodes"
)

// DisabledHistoryRepository подставляется, когда персистентность не
// сконфигурирована: каждая операция отвечает ошибкой StoreNotConfigured,
// которую вызывающий код потребляет логированием. Калькулятор при этом
// остаётся полностью работоспособным.
type DisabledHistoryRepository struct{}

func NewDisabledHistoryRepository() DisabledHistoryRepository {
	return DisabledHistoryRepository{}
}

func (DisabledHistoryRepository) Insert(_ context.Context, _ *entity.HistoryRecord) error {
	return errNotConfigured()
}

func (DisabledHistoryRepository) List(_ context.Context, _ int) ([]entity.HistoryRecord, error) {
	return nil, errNotConfigured()
}

func (DisabledHistoryRepository) Delete(_ context.Context, _ string) error {
	return errNotConfigured()
}

func errNotConfigured() error {
	return domain.NewError(errcodes.StoreNotConfigured, "history store is not configured")
}
