// Package domain holds account types and ports
package domain

import (
	"github.com/google/uuid"

	"walletscan/internal/core/assets"
)

// Filter restricts which accounts are eligible to fund a send
type Filter int

// Account filters
const (
	// FilterAll admits every send capable account
	FilterAll Filter = iota

	// FilterNonCustodial admits only accounts the user holds keys for
	// Payment invoices settle on chain and cannot be funded from custody
	FilterNonCustodial
)

// String returns a stable name for logs
func (f Filter) String() string {
	if f == FilterNonCustodial {
		return "non_custodial"
	}
	return "all"
}

// Account is a funding source belonging to the wallet
type Account struct {
	ID          uuid.UUID
	Name        string
	Coin        assets.Asset
	Custodial   bool
	BalanceSats int64
}

// Label renders a human readable name for selection prompts
func (a Account) Label() string {
	return a.Name + " (" + a.Coin.DisplayName() + ")"
}
