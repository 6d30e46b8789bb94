// Package domain holds feature gate ports
package domain

import "context"

// GatePort answers whether a named feature is currently enabled
//
// Implementations must hit the backing toggle store on every call. The gate
// is deliberately uncached, a remote operator can flip a toggle mid session
// and the very next scan must observe it
type GatePort interface {
	Enabled(ctx context.Context, feature string) (bool, error)
}

// LookupPort reads the raw toggle value for a feature
type LookupPort interface {
	Lookup(ctx context.Context, feature string) (val string, found bool, err error)
}
