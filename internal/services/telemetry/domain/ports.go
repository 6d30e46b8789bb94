package domain

import "context"

// RecorderPort records scan events
// Recording is fire and forget, implementations swallow their own failures
// so a telemetry outage can never fail a scan
type RecorderPort interface {
	Record(ctx context.Context, e Event)
}
