// Package service implements invoice resolution
package service

import (
	"context"
	"strings"
	"time"

	"walletscan/internal/core/assets"
	"walletscan/internal/core/classify"
	"walletscan/internal/core/target"
	dom "walletscan/internal/services/invoice/domain"
	perr "walletscan/internal/platform/errors"
)

// Config for the invoice resolver
type Config struct {
	// BaseURL is the invoice service base path, eg "https://bitpay.com/i/"
	BaseURL string
}

// Service implements domain.ResolverPort
type Service struct {
	Fetcher dom.FetcherPort
	Cfg     Config

	// now is swappable for expiry tests
	now func() time.Time
}

// New constructs a resolver with a required fetcher
func New(fetcher dom.FetcherPort, cfg Config) *Service {
	return &Service{Fetcher: fetcher, Cfg: cfg, now: time.Now}
}

// Resolve maps a scanned payment URI to an invoice target
//
// The currency prefix is checked against the known asset table before any
// network call is made, an unknown prefix fails fast with UnsupportedAsset.
// Fetch and validation failures surface as InvoiceResolutionFailed and are
// never retried, a fresh scan is the only recovery path
func (s *Service) Resolve(ctx context.Context, uri string) (target.Target, error) {
	coin, ok := assets.FromInvoicePrefix(uri)
	if !ok {
		prefix, _, _ := strings.Cut(uri, ":")
		return nil, perr.UnsupportedAssetf("unrecognized currency prefix %q", prefix)
	}

	id := invoiceID(uri, s.Cfg.BaseURL)
	if id == "" {
		return nil, perr.InvoiceFailed(perr.Newf(perr.ErrorCodeInvalidArgument, "payment URI carries no invoice id"))
	}

	inv, err := s.Fetcher.FetchInvoice(ctx, coin, id)
	if err != nil {
		return nil, perr.InvoiceFailed(err)
	}

	if inv.Coin != coin {
		return nil, perr.InvoiceFailed(
			perr.Newf(perr.ErrorCodeInvalidArgument, "invoice currency %s does not match scanned prefix %s", inv.Coin, coin))
	}
	if inv.Expired(s.now()) {
		return nil, perr.InvoiceFailed(perr.Newf(perr.ErrorCodeInvalidArgument, "invoice %s has expired", inv.ID))
	}

	return dom.Target{
		InvoiceID:  inv.ID,
		Coin:       inv.Coin,
		Address:    inv.Address,
		AmountSats: inv.AmountSats,
		Memo:       inv.Memo,
		Expires:    inv.Expires,
	}, nil
}

// invoiceID extracts the trailing invoice identifier from the payment
// request URL embedded in uri
func invoiceID(uri, base string) string {
	req := classify.PaymentRequestURL(uri)
	if req == "" || (base != "" && !strings.Contains(req, base)) {
		return ""
	}
	req = strings.TrimRight(req, "/")
	if i := strings.LastIndexByte(req, '/'); i >= 0 {
		return req[i+1:]
	}
	return ""
}
