// Package module implements the scan pipeline module
package module

import (
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	"walletscan/internal/services/scan/domain"
	"walletscan/internal/services/scan/service"
)

// Ports exposed by the scan module
type Ports struct {
	Processor domain.ProcessorPort
}

// Module implements the scan pipeline module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new scan module
// Collaborator ports are injected through modkit.WithPorts as a
// service.Collaborators value, the pipeline performs no ambient lookups
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(opts...)
	collab, ok := b.Ports.(service.Collaborators)
	if !ok {
		panic("scan module requires service.Collaborators via modkit.WithPorts")
	}

	mopts := FromConfig(deps.Cfg)
	svc := service.New(service.Config{InvoiceBase: mopts.InvoiceBase}, collab, deps.Log)

	m := &Module{deps: deps}
	m.ports = Ports{Processor: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "scan" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module, the HTTP surface lives in the api module
func (m *Module) MountRoutes(r httpkit.Router) {}
