package domain

import (
	"context"

	"walletscan/internal/core/assets"
)

// DirectoryPort lists send capable accounts for an asset under a filter
// The returned order is stable and is the order presented to the user
type DirectoryPort interface {
	AccountsFor(ctx context.Context, coin assets.Asset, f Filter) ([]Account, error)
}
