package module

import "walletscan/internal/platform/config"

// Options holds configuration settings for the gate module
type Options struct {
	DefaultEnabled bool
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	g := cfg.Prefix("CORE_GATE_")
	return Options{
		DefaultEnabled: g.MayBool("DEFAULT_ENABLED", false),
	}
}
