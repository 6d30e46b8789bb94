// Package api provides the HTTP API for the application
package api

import (
	"walletscan/internal/platform/config"
	"walletscan/internal/platform/logger"
	phttp "walletscan/internal/platform/net/http"
	"walletscan/internal/platform/store"

	"walletscan/internal/modkit"
	"walletscan/internal/modkit/httpkit"
	"walletscan/internal/modkit/module"

	"walletscan/internal/adapters/coinaddr"
	"walletscan/internal/adapters/walletconnect"
	accdom "walletscan/internal/services/accounts/domain"
	accmod "walletscan/internal/services/accounts/module"
	metamod "walletscan/internal/services/api/meta/module"
	apiscanmod "walletscan/internal/services/api/scan/module"
	gatedom "walletscan/internal/services/gate/domain"
	gatemod "walletscan/internal/services/gate/module"
	invdom "walletscan/internal/services/invoice/domain"
	invmod "walletscan/internal/services/invoice/module"
	scandom "walletscan/internal/services/scan/domain"
	scanmod "walletscan/internal/services/scan/module"
	scansvc "walletscan/internal/services/scan/service"
	teldom "walletscan/internal/services/telemetry/domain"
	telmod "walletscan/internal/services/telemetry/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		KV:  opt.Store.KV,
	}

	// worker modules first so their ports can be injected downstream
	gateMod := gatemod.New(deps)
	invMod := invmod.New(deps)
	accMod := accmod.New(deps)
	telMod := telmod.New(deps)

	directory := module.MustPortsOf[accdom.DirectoryPort](accMod)

	// the pipeline takes every collaborator explicitly, no ambient lookups
	// interactive selectors stay nil, ambiguity comes back to API clients
	// as the full candidate list instead of a server side prompt
	scanMod := scanmod.New(deps, modkit.WithPorts(scansvc.Collaborators{
		Invoice:   module.MustPortsOf[invdom.ResolverPort](invMod),
		Gate:      module.MustPortsOf[gatedom.GatePort](gateMod),
		Parser:    coinaddr.New(),
		Accounts:  directory,
		Recorder:  module.MustPortsOf[teldom.RecorderPort](telMod),
		PairValid: walletconnect.New().IsValidURI,
	}))

	apiScan := apiscanmod.New(deps, modkit.WithPorts(apiscanmod.Ports{
		Processor: module.MustPortsOf[scandom.ProcessorPort](scanMod),
		Directory: directory,
	}))

	mods := []module.Module{
		metamod.New(deps),
		gateMod,
		invMod,
		accMod,
		telMod,
		scanMod,
		apiScan,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross module lookups
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
