// Package domain holds the scan API transport shapes
package domain

import (
	"walletscan/internal/core/target"
	accdom "walletscan/internal/services/accounts/domain"
	invdom "walletscan/internal/services/invoice/domain"
	scandom "walletscan/internal/services/scan/domain"
)

// ResolveInput is one scanned payload to resolve
type ResolveInput struct {
	Text       string `json:"text" validate:"required"`
	Deeplinked bool   `json:"deeplinked"`
}

// AccountsInput asks for eligible funding accounts
type AccountsInput struct {
	Asset        string `json:"asset" validate:"required,oneof=BTC BCH ETH"`
	NonCustodial bool   `json:"non_custodial"`
}

// Result kinds on the wire
const (
	KindHTTPLink      = "http_link"
	KindTxTargets     = "tx_targets"
	KindImportedKey   = "imported_key"
	KindSecuredLogin  = "secured_channel_login"
	KindWalletConnect = "walletconnect_request"
)

// TargetDTO is one candidate destination
type TargetDTO struct {
	Asset      string `json:"asset"`
	Label      string `json:"label"`
	Address    string `json:"address,omitempty"`
	InvoiceID  string `json:"invoice_id,omitempty"`
	AmountSats int64  `json:"amount_sats,omitempty"`
}

// ResolveOutput is the resolved scan in wire form
type ResolveOutput struct {
	Kind       string      `json:"kind"`
	Deeplinked bool        `json:"deeplinked"`
	URI        string      `json:"uri,omitempty"`
	Handshake  string      `json:"handshake,omitempty"`
	Data       string      `json:"data,omitempty"`
	KeyAsset   string      `json:"key_asset,omitempty"`
	Targets    []TargetDTO `json:"targets,omitempty"`
}

// AccountDTO is one eligible funding account
type AccountDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Asset       string `json:"asset"`
	Custodial   bool   `json:"custodial"`
	BalanceSats int64  `json:"balance_sats"`
}

// FromResult maps a pipeline result to its wire shape
// The switch is exhaustive over the sealed result set
func FromResult(res scandom.Result) ResolveOutput {
	switch r := res.(type) {
	case scandom.HTTPLink:
		return ResolveOutput{Kind: KindHTTPLink, URI: r.URI, Deeplinked: r.Deeplinked()}
	case scandom.TxTargets:
		return ResolveOutput{Kind: KindTxTargets, Targets: toTargetDTOs(r.Targets), Deeplinked: r.Deeplinked()}
	case scandom.ImportedKey:
		return ResolveOutput{Kind: KindImportedKey, KeyAsset: r.Key.Coin.String()}
	case scandom.SecuredChannelLogin:
		return ResolveOutput{Kind: KindSecuredLogin, Handshake: r.Handshake}
	case scandom.WalletConnectRequest:
		return ResolveOutput{Kind: KindWalletConnect, Data: r.Data}
	default:
		// unreachable, Result is sealed
		return ResolveOutput{}
	}
}

func toTargetDTOs(ts []target.Target) []TargetDTO {
	out := make([]TargetDTO, 0, len(ts))
	for _, t := range ts {
		dto := TargetDTO{Asset: t.Asset().String(), Label: t.Label()}
		switch x := t.(type) {
		case target.Address:
			dto.Address = x.Address
		case invdom.Target:
			dto.InvoiceID = x.InvoiceID
			dto.Address = x.Address
			dto.AmountSats = x.AmountSats
		}
		out = append(out, dto)
	}
	return out
}

// FromAccounts maps directory rows to wire accounts
func FromAccounts(accs []accdom.Account) []AccountDTO {
	out := make([]AccountDTO, 0, len(accs))
	for _, a := range accs {
		out = append(out, AccountDTO{
			ID:          a.ID.String(),
			Name:        a.Name,
			Asset:       a.Coin.String(),
			Custodial:   a.Custodial,
			BalanceSats: a.BalanceSats,
		})
	}
	return out
}
