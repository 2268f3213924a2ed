package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"outlet_margin/internal/domain"
	"outlet_margin/internal/domain/entity"
	"outlet_margin/pkg/errcodes"
)

const insertMaxRetry = 5

// Enqueuer ставит задачи зеркалирования истории в очередь. Постановка
// best-effort: вызывающий код только логирует ошибку, локальное состояние
// не откатывается.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueInsert ставит задачу вставки. TaskID совпадает с id записи, поэтому
// повторная постановка той же записи схлопывается в одну задачу.
func (e *Enqueuer) EnqueueInsert(ctx context.Context, record entity.HistoryRecord) error {
	b, err := json.Marshal(newInsertPayload(record))
	if err != nil {
		return fmt.Errorf("marshal insert payload: %w", err)
	}

	_, err = e.client.EnqueueContext(ctx, asynq.NewTask(TaskHistoryInsert, b),
		asynq.Queue(QueueHistory),
		asynq.TaskID(TaskHistoryInsert+":"+record.ID),
		asynq.MaxRetry(insertMaxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue insert: %w", err)
	}

	return nil
}

func (e *Enqueuer) EnqueueDelete(ctx context.Context, id string) error {
	b, err := json.Marshal(deletePayload{ID: id})
	if err != nil {
		return fmt.Errorf("marshal delete payload: %w", err)
	}

	_, err = e.client.EnqueueContext(ctx, asynq.NewTask(TaskHistoryDelete, b),
		asynq.Queue(QueueHistory),
		asynq.MaxRetry(insertMaxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue delete: %w", err)
	}

	return nil
}

// NoopEnqueuer — заглушка при выключенной персистентности: каждая постановка
// отвечает описательной ошибкой, которая потребляется логированием.
type NoopEnqueuer struct{}

func (NoopEnqueuer) EnqueueInsert(_ context.Context, _ entity.HistoryRecord) error {
	return domain.NewError(errcodes.StoreNotConfigured, "history mirror is not configured")
}

func (NoopEnqueuer) EnqueueDelete(_ context.Context, _ string) error {
	return domain.NewError(errcodes.StoreNotConfigured, "history mirror is not configured")
}
