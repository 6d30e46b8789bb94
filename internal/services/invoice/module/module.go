// Package module implements the invoice service module
package module

import (
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	"walletscan/internal/services/invoice/client"
	"walletscan/internal/services/invoice/domain"
	"walletscan/internal/services/invoice/service"
)

// Ports exposed by the invoice module
type Ports struct {
	Resolver domain.ResolverPort
}

// Module implements the invoice service module
type Module struct {
	deps  modkit.Deps
	ports Ports
	opts  Options
}

// New constructs a new invoice module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	fetcher := client.New(client.Config{
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
	}, deps.Log)

	svc := service.New(fetcher, service.Config{BaseURL: opts.BaseURL})

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{Resolver: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "invoice" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

// InvoiceBaseURL exposes the configured base path for the classifier
func (m *Module) InvoiceBaseURL() string { return m.opts.BaseURL }
