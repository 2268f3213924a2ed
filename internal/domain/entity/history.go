package entity

import "time"

// HistoryRecord — замороженный снимок одного расчёта. Запись неизменяема:
// редактирование не поддерживается, только удаление.
type HistoryRecord struct {
	ID        string
	Memo      string
	Input     PricingInput
	Result    PricingResult
	CreatedAt time.Time
}
