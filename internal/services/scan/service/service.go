// Package service implements the scan resolution pipeline and disambiguation
package service

import (
	"context"

	"walletscan/internal/core/assets"
	"walletscan/internal/core/classify"
	"walletscan/internal/core/sanitize"
	"walletscan/internal/core/target"
	perr "walletscan/internal/platform/errors"
	"walletscan/internal/platform/logger"
	accdom "walletscan/internal/services/accounts/domain"
	gatedom "walletscan/internal/services/gate/domain"
	invdom "walletscan/internal/services/invoice/domain"
	dom "walletscan/internal/services/scan/domain"
	teldom "walletscan/internal/services/telemetry/domain"
)

// Config for the scan processor
type Config struct {
	// InvoiceBase is the invoice service base path used by classification
	InvoiceBase string
}

// Collaborators are the external ports the pipeline drives
// All of them are injected, the pipeline holds no ambient lookups
type Collaborators struct {
	Invoice   invdom.ResolverPort
	Gate      gatedom.GatePort
	Parser    dom.TargetParserPort
	Accounts  accdom.DirectoryPort
	Recorder  teldom.RecorderPort
	PairValid classify.PairingValidator

	// interactive selectors, may be nil in non interactive deployments
	Targets    dom.TargetSelectorPort
	AccountsUI dom.AccountSelectorPort
}

// Processor implements domain.ProcessorPort
// Each call is independent, the processor holds no mutable state between scans
type Processor struct {
	cls *classify.Classifier
	c   Collaborators
	log logger.Logger
}

// New constructs a Processor
func New(cfg Config, c Collaborators, log logger.Logger) *Processor {
	return &Processor{
		cls: classify.New(cfg.InvoiceBase, c.PairValid),
		c:   c,
		log: log.With().Str("component", "scan").Logger(),
	}
}

// ProcessScan implements domain.ProcessorPort
//
// The payload is sanitized, classified once, and resolved by exactly one
// branch. Every branch failure is normalized into the closed scan error set
// before it crosses this boundary. Exactly one telemetry event is recorded
// per call, after the outcome is fully determined
func (p *Processor) ProcessScan(ctx context.Context, payload dom.Payload) (dom.Result, error) {
	text := sanitize.Payload(payload.Text)

	res, err := p.resolve(ctx, text, payload.Deeplinked)
	if err != nil {
		p.c.Recorder.Record(ctx, teldom.Event{Code: teldom.CodeInvalid, Deeplinked: payload.Deeplinked})
		p.log.Debug().Str("kind", "invalid").Err(err).Msg("scan rejected")
		return nil, err
	}

	p.c.Recorder.Record(ctx, teldom.Event{Code: eventCode(res), Deeplinked: payload.Deeplinked})
	p.log.Debug().Str("kind", string(eventCode(res))).Msg("scan resolved")
	return res, nil
}

func (p *Processor) resolve(ctx context.Context, text string, deeplinked bool) (dom.Result, error) {
	switch p.cls.Classify(text) {
	case classify.HTTPLink:
		return dom.HTTPLink{URI: text, Deeplink: deeplinked}, nil

	case classify.PaymentInvoiceLink:
		tgt, err := p.c.Invoice.Resolve(ctx, text)
		if err != nil {
			// already one of UnsupportedAsset or InvoiceResolutionFailed
			return nil, err
		}
		return dom.TxTargets{Targets: []target.Target{tgt}, Deeplink: deeplinked}, nil

	case classify.StructuredLoginJSON:
		return dom.SecuredChannelLogin{Handshake: text}, nil

	case classify.WalletConnectCandidate:
		enabled, err := p.c.Gate.Enabled(ctx, gatedom.FeatureWalletConnect)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeScanFailed, "feature gate unavailable")
		}
		if !enabled {
			return nil, perr.FeatureDisabled(gatedom.FeatureWalletConnect)
		}
		return dom.WalletConnectRequest{Data: text}, nil

	default:
		return p.parseGeneric(ctx, text, deeplinked)
	}
}

// parseGeneric is the fallback branch for payloads no fast pattern matched
func (p *Processor) parseGeneric(ctx context.Context, text string, deeplinked bool) (dom.Result, error) {
	ts, err := p.c.Parser.Parse(ctx, text)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeScanFailed, "unrecognized scan payload")
	}

	addrs := target.Addresses(ts)
	if len(addrs) == 0 {
		if key, ok := firstKey(ts); ok {
			return dom.ImportedKey{Key: key}, nil
		}
	}
	return dom.TxTargets{Targets: addrs, Deeplink: deeplinked}, nil
}

func firstKey(ts []target.Target) (target.PrivateKey, bool) {
	for _, t := range ts {
		if k, ok := t.(target.PrivateKey); ok {
			return k, true
		}
	}
	return target.PrivateKey{}, false
}

// ChooseTarget implements domain.ProcessorPort
//
// Cardinality rules: one match returns synchronously, several defer to the
// interactive selector exactly once. A dismissed selector is not an error,
// it is "nothing selected"
func (p *Processor) ChooseTarget(
	ctx context.Context,
	candidates []target.Target,
	coin assets.Asset,
) (target.Target, bool, error) {
	matches := candidates
	if coin != "" {
		matches = target.ForAsset(candidates, coin)
	}

	switch len(matches) {
	case 0:
		return nil, false, nil
	case 1:
		return matches[0], true, nil
	}

	if p.c.Targets == nil {
		p.log.Warn().Int("candidates", len(matches)).Msg("no target selector wired, dropping ambiguous scan")
		return nil, false, nil
	}

	idx, ok, err := p.c.Targets.PresentTargets(ctx, target.Labels(matches)).Await(ctx)
	if err != nil {
		return nil, false, err
	}
	if !ok || idx < 0 || idx >= len(matches) {
		return nil, false, nil
	}
	return matches[idx], true, nil
}

// ChooseAccount implements domain.ProcessorPort
//
// Invoice targets settle on chain so custody accounts are filtered out,
// anything else may fund from any send capable account. A directory error
// surfaces to the caller, it is never treated as zero accounts
func (p *Processor) ChooseAccount(ctx context.Context, tgt target.Target) (accdom.Account, bool, error) {
	filter := accdom.FilterAll
	if _, isInvoice := tgt.(invdom.Target); isInvoice {
		filter = accdom.FilterNonCustodial
	}

	accs, err := p.c.Accounts.AccountsFor(ctx, tgt.Asset(), filter)
	if err != nil {
		return accdom.Account{}, false, err
	}

	switch len(accs) {
	case 0:
		return accdom.Account{}, false, nil
	case 1:
		return accs[0], true, nil
	}

	if p.c.AccountsUI == nil {
		p.log.Warn().Int("accounts", len(accs)).Msg("no account selector wired, nothing selected")
		return accdom.Account{}, false, nil
	}

	acc, ok, err := p.c.AccountsUI.PresentAccounts(ctx, accs).Await(ctx)
	if err != nil {
		return accdom.Account{}, false, err
	}
	if !ok {
		return accdom.Account{}, false, nil
	}
	return acc, true, nil
}

// SelectAssetTarget implements domain.ProcessorPort
// Non target results and misses select nothing
func (p *Processor) SelectAssetTarget(coin assets.Asset, res dom.Result) (target.Address, bool) {
	tx, ok := res.(dom.TxTargets)
	if !ok {
		return target.Address{}, false
	}
	for _, t := range tx.Targets {
		if a, ok := t.(target.Address); ok && a.Coin == coin {
			return a, true
		}
	}
	return target.Address{}, false
}

// eventCode maps a result variant to its telemetry tag
func eventCode(res dom.Result) teldom.Code {
	switch res.(type) {
	case dom.HTTPLink:
		return teldom.CodeDeeplink
	case dom.WalletConnectRequest:
		return teldom.CodeDapp
	case dom.SecuredChannelLogin:
		return teldom.CodeLogin
	default:
		// TxTargets and ImportedKey
		return teldom.CodeCryptoAddress
	}
}
