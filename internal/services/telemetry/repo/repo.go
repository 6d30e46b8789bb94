// Package repo provides the telemetry repository over ClickHouse
package repo

import (
	"context"

	"walletscan/internal/platform/store"
	"walletscan/internal/services/telemetry/domain"
)

// table and column layout of the scan event stream
const table = "scan_events"

var cols = []string{"id", "at", "code", "deeplinked"}

// CH writes events to ClickHouse
type CH struct {
	ch store.Clickhouse
}

// NewCH constructs a CH repo
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

// Write inserts a single event
func (r *CH) Write(ctx context.Context, e domain.Event) error {
	row := []any{e.ID.String(), e.At, string(e.Code), e.Deeplinked}
	return r.ch.Insert(ctx, table, cols, [][]any{row})
}
