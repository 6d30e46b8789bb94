// Package domain holds invoice types and ports
package domain

import (
	"time"

	"walletscan/internal/core/assets"
)

// Invoice is a server issued payment request with fixed amount and expiry
type Invoice struct {
	ID         string
	Coin       assets.Asset
	Address    string
	AmountSats int64
	Memo       string
	PaymentURL string
	Expires    time.Time
}

// Expired reports whether the invoice can no longer be paid at now
func (i Invoice) Expired(now time.Time) bool {
	return !i.Expires.IsZero() && now.After(i.Expires)
}

// Target is a resolved invoice destination
// It satisfies the shared target contract so the pipeline can treat it like
// any other destination while disambiguation can still tell it apart
type Target struct {
	InvoiceID string
	Coin      assets.Asset
	Address   string
	// AmountSats is the fixed amount in the asset's minor unit
	AmountSats int64
	Memo       string
	Expires    time.Time
}

// Asset returns the invoice currency
func (t Target) Asset() assets.Asset { return t.Coin }

// Label renders a human readable destination
func (t Target) Label() string {
	if t.Memo != "" {
		return t.Memo
	}
	return "Invoice " + t.InvoiceID
}
