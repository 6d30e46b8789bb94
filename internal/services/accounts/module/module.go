// Package module implements the accounts service module
package module

import (
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	"walletscan/internal/services/accounts/domain"
	"walletscan/internal/services/accounts/repo"
	"walletscan/internal/services/accounts/service"
)

// Ports exposed by the accounts module
type Ports struct {
	Directory domain.DirectoryPort
}

// Module implements the accounts service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new accounts module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Directory: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "accounts" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
