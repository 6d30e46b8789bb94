package store

// Config enables and configures the optional backends
type Config struct {
	PG PGConfig
	CH CHConfig
	KV KVConfig
}

// PGConfig configures the postgres backend
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32
}

// CHConfig configures the clickhouse backend
type CHConfig struct {
	Enabled bool
	URL     string
}

// KVConfig configures the redis backend
type KVConfig struct {
	Enabled bool
	URL     string
}
