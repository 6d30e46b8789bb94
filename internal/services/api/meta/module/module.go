// Package module wires the meta endpoints using modkit
package module

import (
	"walletscan/internal/core/assets"
	"walletscan/internal/core/version"
	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	metahttp "walletscan/internal/services/api/meta/http"
)

// Module implements the meta module
type Module struct {
	deps modkit.Deps
}

// New constructs the meta module
func New(deps modkit.Deps) *Module { return &Module{deps: deps} }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	names := make([]string, 0, len(assets.All()))
	for _, a := range assets.All() {
		names = append(names, a.String())
	}
	r.Route("/meta", func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Info{
			Service: "walletscan",
			Assets:  names,
			Build:   version.Info(),
		})
	})
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "meta" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return nil }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "/meta" }
