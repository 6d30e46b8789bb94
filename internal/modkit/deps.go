package modkit

import (
	"walletscan/internal/modkit/repokit"
	"walletscan/internal/platform/config"
	"walletscan/internal/platform/logger"
	"walletscan/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	KV  store.KV
}
