// Package service provides the accounts directory implementation
package service

import (
	"context"

	"walletscan/internal/core/assets"
	"walletscan/internal/modkit/repokit"
	"walletscan/internal/services/accounts/domain"
	"walletscan/internal/services/accounts/repo"
)

// Service implements domain.DirectoryPort against the Postgres repo
type Service struct {
	DB     repokit.Queryer
	Binder repokit.Binder[repo.Storage]
}

// New constructs an accounts service
func New(db repokit.Queryer, binder repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: binder}
}

// AccountsFor implements domain.DirectoryPort
func (s *Service) AccountsFor(ctx context.Context, coin assets.Asset, f domain.Filter) ([]domain.Account, error) {
	return repokit.MustBind(s.Binder, s.DB).AccountsFor(ctx, coin, f)
}
