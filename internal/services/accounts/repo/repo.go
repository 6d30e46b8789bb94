// Package repo provides the accounts repository implementation
package repo

import (
	"context"

	"walletscan/internal/core/assets"
	"walletscan/internal/modkit/repokit"
	perr "walletscan/internal/platform/errors"
	"walletscan/internal/services/accounts/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the accounts repository
type Storage interface {
	AccountsFor(ctx context.Context, coin assets.Asset, f domain.Filter) ([]domain.Account, error)
}

// AccountsFor implements Storage
// Rows come back in the wallet's display order so selection prompts are stable
func (s *pg) AccountsFor(ctx context.Context, coin assets.Asset, f domain.Filter) ([]domain.Account, error) {
	const q = `
		SELECT id, name, asset, custodial, balance_sats
		FROM accounts
		WHERE asset = $1
		  AND can_send
		  AND ($2 OR NOT custodial)
		ORDER BY position, name`

	rows, err := s.q.Query(ctx, q, coin.String(), f == domain.FilterAll)
	if err != nil {
		return nil, perr.FromPg(err)
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		var (
			a     domain.Account
			asset string
		)
		if err := rows.Scan(&a.ID, &a.Name, &asset, &a.Custodial, &a.BalanceSats); err != nil {
			return nil, perr.FromPg(err)
		}
		a.Coin = assets.Asset(asset)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err)
	}
	return out, nil
}
