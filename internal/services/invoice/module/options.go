package module

import (
	"time"

	"walletscan/internal/platform/config"
)

// Options holds configuration settings for the invoice module
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	inv := cfg.Prefix("CORE_INVOICE_")
	return Options{
		BaseURL: inv.MayString("BASE_URL", "https://bitpay.com/i/"),
		Timeout: inv.MayDuration("TIMEOUT", 10*time.Second),
	}
}
