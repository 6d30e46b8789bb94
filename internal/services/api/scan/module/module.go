// Package module wires the scan API into the router using modkit
package module

import (
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	accdom "walletscan/internal/services/accounts/domain"
	scanhttp "walletscan/internal/services/api/scan/http"
	scandom "walletscan/internal/services/scan/domain"
)

// Ports required by the scan API module
type Ports struct {
	Processor scandom.ProcessorPort
	Directory accdom.DirectoryPort
}

// Module implements the scan API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	ports  Ports
}

// New constructs the scan API module
// The processor and directory ports come from the worker modules via WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("scan-api"), modkit.WithPrefix("/scan")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Processor == nil {
		panic("scan api module requires Ports{Processor, Directory} via modkit.WithPorts")
	}

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		ports:  ports,
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		scanhttp.Register(rr, m.ports.Processor, m.ports.Directory)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
