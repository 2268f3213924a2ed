package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"outlet_margin/internal/domain/entity"
)

// HistoryRepository — пишущая сторона постоянного хранилища истории.
type HistoryRepository interface {
	Insert(ctx context.Context, record *entity.HistoryRecord) error
	Delete(ctx context.Context, id string) error
}

// Mirror исполняет задачи зеркалирования против постоянного хранилища.
// Ошибка обработчика отдаёт задачу на ретрай asynq; локальное состояние
// приложения от этого не зависит.
type Mirror struct {
	repo HistoryRepository
}

func NewMirror(repo HistoryRepository) *Mirror {
	return &Mirror{repo: repo}
}

func (m *Mirror) HandleInsert(ctx context.Context, task *asynq.Task) error {
	var p insertPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal insert payload: %w", err)
	}

	record, err := p.toRecord()
	if err != nil {
		return fmt.Errorf("payload to record: %w", err)
	}

	if err := m.repo.Insert(ctx, &record); err != nil {
		return fmt.Errorf("repo insert: %w", err)
	}

	logger(ctx).Debug("history record mirrored", "id", record.ID)

	return nil
}

func (m *Mirror) HandleDelete(ctx context.Context, task *asynq.Task) error {
	var p deletePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal delete payload: %w", err)
	}

	if err := m.repo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	logger(ctx).Debug("history record unmirrored", "id", p.ID)

	return nil
}
