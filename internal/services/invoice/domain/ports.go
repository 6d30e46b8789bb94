package domain

import (
	"context"

	"walletscan/internal/core/assets"
	"walletscan/internal/core/target"
)

// FetcherPort retrieves a raw invoice from the payment service
type FetcherPort interface {
	FetchInvoice(ctx context.Context, coin assets.Asset, invoiceID string) (Invoice, error)
}

// ResolverPort resolves a scanned payment URI into a single target
type ResolverPort interface {
	Resolve(ctx context.Context, uri string) (target.Target, error)
}
