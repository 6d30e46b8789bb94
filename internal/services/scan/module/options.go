package module

import "walletscan/internal/platform/config"

// Options holds configuration settings for the scan module
type Options struct {
	InvoiceBase string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	s := cfg.Prefix("CORE_SCAN_")
	return Options{
		InvoiceBase: s.MayString("INVOICE_BASE", "https://bitpay.com/i/"),
	}
}
