package domain

import (
	"context"

	"walletscan/internal/core/assets"
	"walletscan/internal/core/target"
	"walletscan/internal/platform/oneshot"
	accdom "walletscan/internal/services/accounts/domain"
)

// ProcessorPort is the single entry point of the scan pipeline
type ProcessorPort interface {
	// ProcessScan classifies and resolves one payload
	ProcessScan(ctx context.Context, p Payload) (Result, error)

	// ChooseTarget narrows candidates to one target, optionally filtered by coin
	// ok is false when nothing was selected
	ChooseTarget(ctx context.Context, candidates []target.Target, coin assets.Asset) (target.Target, bool, error)

	// ChooseAccount narrows the funding accounts for tgt to zero or one
	// ok is false when no eligible account exists or the user dismissed the picker
	ChooseAccount(ctx context.Context, tgt target.Target) (accdom.Account, bool, error)

	// SelectAssetTarget picks the first address of coin out of a resolved result
	SelectAssetTarget(coin assets.Asset, res Result) (target.Address, bool)
}

// TargetParserPort is the generic fallback parser for unmatched payloads
type TargetParserPort interface {
	Parse(ctx context.Context, text string) ([]target.Target, error)
}

// TargetSelectorPort presents target labels and awaits a pick
// The returned promise resolves to the chosen index exactly once, or is
// cancelled when the presentation is dismissed without a pick
type TargetSelectorPort interface {
	PresentTargets(ctx context.Context, labels []string) *oneshot.Promise[int]
}

// AccountSelectorPort presents candidate accounts and awaits a pick
type AccountSelectorPort interface {
	PresentAccounts(ctx context.Context, accounts []accdom.Account) *oneshot.Promise[accdom.Account]
}
