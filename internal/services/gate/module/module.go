// Package module implements the feature gate module
package module

import (
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	"walletscan/internal/services/gate/domain"
	"walletscan/internal/services/gate/repo"
	"walletscan/internal/services/gate/service"
)

// Ports exposed by the gate module
type Ports struct {
	Gate domain.GatePort
}

// Module implements the feature gate module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new gate module
// Falls back to a fixed gate at the configured default when redis is not wired
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var gate domain.GatePort
	if deps.KV != nil {
		gate = service.New(repo.NewKV(deps.KV), service.Config{
			DefaultEnabled: opts.DefaultEnabled,
		})
	} else {
		gate = service.Static(opts.DefaultEnabled)
	}

	m := &Module{deps: deps}
	m.ports = Ports{Gate: gate}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "gate" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
