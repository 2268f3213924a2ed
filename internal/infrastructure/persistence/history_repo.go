package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"outlet_margin/internal/domain"
	"outlet_margin/internal/domain/entity"
	"outlet_margin/pkg/errcodes"
	"outlet_margin/pkg/lox"
)

type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository создаёт новый экземпляр репозитория.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *HistoryRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Insert сохраняет запись истории. Повторная вставка с тем же id — no-op,
// поэтому ретраи зеркала безопасны.
func (r *HistoryRepository) Insert(ctx context.Context, record *entity.HistoryRecord) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO calc_history (
				id, memo, base_price, discount_mode, base_discount_amount,
				base_discount_percent, extra, final, refund10,
				kream_price, kream_net, poizon_price, poizon_net, created_at
			) VALUES (
				:id, :memo, :base_price, :discount_mode, :base_discount_amount,
				:base_discount_percent, :extra, :final, :refund10,
				:kream_price, :kream_net, :poizon_price, :poizon_net, :created_at
			)
			ON CONFLICT (id) DO NOTHING`

		if _, err := tx.NamedExecContext(ctx, query, fromRecord(record)); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert history record")
		}

		return nil
	})
}

// List возвращает записи истории, новые в начале.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]entity.HistoryRecord, error) {
	query := `
		SELECT id, memo, base_price, discount_mode, base_discount_amount,
		       base_discount_percent, extra, final, refund10,
		       kream_price, kream_net, poizon_price, poizon_net, created_at
		FROM calc_history
		ORDER BY created_at DESC
		LIMIT $1`

	var schemas []historySchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list history")
	}

	records, err := lox.MapErr(schemas, func(s historySchema) (entity.HistoryRecord, error) {
		return s.toDomain()
	})
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert history records")
	}

	return records, nil
}

// Delete удаляет запись. Отсутствующая строка не ошибка: задача зеркала
// могла прийти повторно или раньше вставки.
func (r *HistoryRepository) Delete(ctx context.Context, id string) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `DELETE FROM calc_history WHERE id = $1`

		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to delete history record")
		}

		return nil
	})
}
