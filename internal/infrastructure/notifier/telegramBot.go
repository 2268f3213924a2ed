package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"outlet_margin/internal/domain/entity"
	"outlet_margin/pkg/numfmt"
)

// TelegramBot шлёт уведомления о сохранённых расчётах, у которых маржа
// проходит заданный порог.
type TelegramBot struct {
	bot              *telego.Bot
	chatID           int64
	minMarginPercent float64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) WithMarginThreshold(percent float64) *TelegramBot {
	b.minMarginPercent = percent
	return b
}

// Run обрабатывает сохранённые записи из канала.
func (b *TelegramBot) Run(ctx context.Context, records <-chan entity.HistoryRecord) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record, ok := <-records:
			if !ok {
				return nil
			}
			if !b.worthNotifying(record) {
				continue
			}
			if err := b.SendRecord(ctx, record); err != nil {
				logger(ctx).Error("failed to send record", "id", record.ID, "error", err)
			}
		}
	}
}

func (b *TelegramBot) worthNotifying(record entity.HistoryRecord) bool {
	best := bestMarginPercent(record.Result)
	return best != nil && *best >= b.minMarginPercent
}

// SendRecord отправляет сводку сохранённого расчёта.
func (b *TelegramBot) SendRecord(ctx context.Context, record entity.HistoryRecord) error {
	text := fmt.Sprintf(
		"📒 <b>%s</b>\n\n"+
			"💵 <b>Final:</b> %s\n"+
			"🧾 <b>Tax:</b> %s\n\n"+
			"Kream: net %s, margin %s\n"+
			"Poizon: net %s, margin %s",
		record.Memo,
		numfmt.DisplayWon(record.Result.Final),
		numfmt.DisplayWon(record.Result.Tax),
		numfmt.DisplayWon(record.Result.Kream.Net),
		numfmt.DisplayWon(record.Result.Kream.Margin),
		numfmt.DisplayWon(record.Result.Poizon.Net),
		numfmt.DisplayWon(record.Result.Poizon.Margin),
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}

func bestMarginPercent(result entity.PricingResult) *float64 {
	best := result.Kream.MarginPercent

	if p := result.Poizon.MarginPercent; p != nil && (best == nil || *p > *best) {
		best = p
	}

	return best
}
