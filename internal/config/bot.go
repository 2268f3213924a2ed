package config

// Bot — телеграм-бот уведомлений. Опционален: без токена и чата
// уведомления просто не отправляются.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}
