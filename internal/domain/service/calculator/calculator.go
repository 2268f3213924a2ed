package calculator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"outlet_margin/internal/domain"
	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/pricing"
	"outlet_margin/pkg/errcodes"
)

const (
	quoteCacheTTL       = 5 * time.Minute
	defaultRestoreLimit = 50
)

// HistoryRepository — читающая сторона постоянного хранилища истории.
// Опрашивается один раз, при восстановлении списка на старте.
type HistoryRepository interface {
	List(ctx context.Context, limit int) ([]entity.HistoryRecord, error)
}

// HistoryMirror — асинхронное зеркало хранилища. Постановка задачи
// best-effort: ошибка потребляется только логированием.
type HistoryMirror interface {
	EnqueueInsert(ctx context.Context, record entity.HistoryRecord) error
	EnqueueDelete(ctx context.Context, id string) error
}

// CalculatorService пересчитывает производные значения и ведёт историю
// расчётов. Список в памяти — источник истины для отображения; постоянное
// хранилище лишь зеркалирует его и никогда не блокирует работу.
type CalculatorService struct {
	repo   HistoryRepository
	mirror HistoryMirror

	quoteCache   *cache.Cache
	restoreLimit int

	mu      sync.Mutex
	records []entity.HistoryRecord // новые в начале

	saved chan<- entity.HistoryRecord
}

func NewCalculatorService(repo HistoryRepository, mirror HistoryMirror) *CalculatorService {
	return &CalculatorService{
		repo:         repo,
		mirror:       mirror,
		quoteCache:   cache.New(quoteCacheTTL, quoteCacheTTL),
		restoreLimit: defaultRestoreLimit,
	}
}

// WithSavedChannel подключает канал уведомлений о сохранённых записях.
// Отправка неблокирующая: переполненный канал просто теряет уведомление.
func (s *CalculatorService) WithSavedChannel(ch chan<- entity.HistoryRecord) *CalculatorService {
	s.saved = ch
	return s
}

func (s *CalculatorService) WithRestoreLimit(limit int) *CalculatorService {
	if limit > 0 {
		s.restoreLimit = limit
	}

	return s
}

// Quote возвращает результат расчёта для входных данных. Повторные расчёты
// мемоизируются по отпечатку входа; результат обязан совпадать с холодным
// pricing.Evaluate тех же данных. Вход копируется целиком до расчёта, так
// что частично обновлённый набор полей наблюдаться не может.
func (s *CalculatorService) Quote(_ context.Context, input entity.PricingInput) entity.PricingResult {
	input = snapshot(input)
	key := fingerprint(input)

	if cached, found := s.quoteCache.Get(key); found {
		if result, ok := cached.(entity.PricingResult); ok {
			return result
		}
	}

	result := pricing.Evaluate(input)
	s.quoteCache.Set(key, result, cache.DefaultExpiration)

	return result
}

// SaveHistory замораживает текущий расчёт в запись истории. Пустая метка —
// отказ без изменения состояния. Локальный список обновляется оптимистично,
// зеркалирование и уведомление не блокируют сохранение и не откатывают его.
func (s *CalculatorService) SaveHistory(ctx context.Context, memo string, input entity.PricingInput) (entity.HistoryRecord, error) {
	memo = strings.TrimSpace(memo)
	if memo == "" {
		return entity.HistoryRecord{}, domain.NewError(errcodes.EmptyMemo, "memo is required to save history")
	}

	input = snapshot(input)

	record := entity.HistoryRecord{
		ID:        xid.New().String(),
		Memo:      memo,
		Input:     input,
		Result:    s.Quote(ctx, input),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.records = append([]entity.HistoryRecord{record}, s.records...)
	s.mu.Unlock()

	if err := s.mirror.EnqueueInsert(ctx, record); err != nil {
		logger(ctx).Warn("history insert not mirrored", "id", record.ID, "error", err)
	}

	select {
	case s.saved <- record:
	default:
	}

	return record, nil
}

// Records возвращает копию списка истории, новые записи в начале.
// limit <= 0 — весь список.
func (s *CalculatorService) Records(limit int) []entity.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]entity.HistoryRecord, limit)
	copy(out, s.records[:limit])

	return out
}

// DeleteHistory удаляет запись из локального списка и ставит задачу зеркалу.
func (s *CalculatorService) DeleteHistory(ctx context.Context, id string) error {
	s.mu.Lock()

	next := lo.Filter(s.records, func(r entity.HistoryRecord, _ int) bool {
		return r.ID != id
	})
	removed := len(next) != len(s.records)

	if removed {
		s.records = next
	}

	s.mu.Unlock()

	if !removed {
		return domain.NewError(errcodes.RecordNotFound, fmt.Sprintf("history record %s not found", id))
	}

	if err := s.mirror.EnqueueDelete(ctx, id); err != nil {
		logger(ctx).Warn("history delete not mirrored", "id", id, "error", err)
	}

	return nil
}

// Restore наполняет локальный список из хранилища при старте. Недоступное
// или не сконфигурированное хранилище — это пустая история, а не отказ.
func (s *CalculatorService) Restore(ctx context.Context) {
	records, err := s.repo.List(ctx, s.restoreLimit)
	if err != nil {
		logger(ctx).Warn("history restore skipped", "error", err)
		return
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	logger(ctx).Info("history restored", "count", len(records))
}

// snapshot копирует вход вместе со значениями указателей, чтобы запись
// не делила память с вызывающим кодом.
func snapshot(in entity.PricingInput) entity.PricingInput {
	in.BasePrice = cloneInt(in.BasePrice)
	in.DiscountAmount = cloneInt(in.DiscountAmount)
	in.DiscountPercent = cloneFloat(in.DiscountPercent)
	in.ExtraPercent = cloneFloat(in.ExtraPercent)
	in.KreamPrice = cloneInt(in.KreamPrice)
	in.PoizonPrice = cloneInt(in.PoizonPrice)

	return in
}

// fingerprint — ключ мемоизации: ровно те поля, от которых зависит расчёт.
func fingerprint(in entity.PricingInput) string {
	var b strings.Builder

	writeInt(&b, in.BasePrice)
	b.WriteString(in.DiscountMode.String())
	b.WriteByte('|')
	writeInt(&b, in.DiscountAmount)
	writeFloat(&b, in.DiscountPercent)
	writeFloat(&b, in.ExtraPercent)
	writeInt(&b, in.KreamPrice)
	writeInt(&b, in.PoizonPrice)

	return b.String()
}

func writeInt(b *strings.Builder, v *int64) {
	if v == nil {
		b.WriteString("-")
	} else {
		fmt.Fprintf(b, "%d", *v)
	}

	b.WriteByte('|')
}

func writeFloat(b *strings.Builder, v *float64) {
	if v == nil {
		b.WriteString("-")
	} else {
		fmt.Fprintf(b, "%g", *v)
	}

	b.WriteByte('|')
}

func cloneInt(v *int64) *int64 {
	if v == nil {
		return nil
	}

	c := *v

	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	c := *v

	return &c
}
