// Package http provides http transport for scan resolution
package http

import (
	stdhttp "net/http"

	"walletscan/internal/core/assets"
	"walletscan/internal/modkit/httpkit"
	accdom "walletscan/internal/services/accounts/domain"
	"walletscan/internal/services/api/scan/domain"
	scandom "walletscan/internal/services/scan/domain"
)

// Register mounts scan endpoints on the given router
func Register(r httpkit.Router, proc scandom.ProcessorPort, dir accdom.DirectoryPort) {
	h := &handlers{proc: proc, dir: dir}

	// resolve one scanned payload
	httpkit.PostJSON[domain.ResolveInput](r, "/resolve", h.resolve)

	// eligible funding accounts for an asset
	httpkit.PostJSON[domain.AccountsInput](r, "/accounts", h.accounts)
}

type handlers struct {
	proc scandom.ProcessorPort
	dir  accdom.DirectoryPort
}

func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	res, err := h.proc.ProcessScan(r.Context(), scandom.Payload{
		Text:       in.Text,
		Deeplinked: in.Deeplinked,
	})
	if err != nil {
		return nil, err
	}
	return domain.FromResult(res), nil
}

func (h *handlers) accounts(r *stdhttp.Request, in domain.AccountsInput) (any, error) {
	filter := accdom.FilterAll
	if in.NonCustodial {
		filter = accdom.FilterNonCustodial
	}
	accs, err := h.dir.AccountsFor(r.Context(), assets.Asset(in.Asset), filter)
	if err != nil {
		return nil, err
	}
	return domain.FromAccounts(accs), nil
}
