// Package module implements the telemetry module
package module

import (
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	"walletscan/internal/services/telemetry/domain"
	"walletscan/internal/services/telemetry/repo"
	"walletscan/internal/services/telemetry/service"
)

// Ports exposed by the telemetry module
type Ports struct {
	Recorder domain.RecorderPort
}

// Module implements the telemetry module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new telemetry module
// Falls back to a no-op recorder when ClickHouse is not wired
func New(deps modkit.Deps) *Module {
	var rec domain.RecorderPort
	if deps.CH != nil {
		rec = service.New(repo.NewCH(deps.CH), deps.Log)
	} else {
		rec = service.Nop{}
	}

	m := &Module{deps: deps}
	m.ports = Ports{Recorder: rec}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "telemetry" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
