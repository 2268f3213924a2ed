package config

type Calculator struct {
	AlertMarginPercent float64 `env:"ALERT_MARGIN_PERCENT" envDefault:"10"`
	HistoryLimit       int     `env:"HISTORY_LIMIT" envDefault:"50"`
}
