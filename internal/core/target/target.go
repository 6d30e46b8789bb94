// Package target defines the destination vocabulary shared by the scan pipeline
// and its collaborators
package target

import (
	"walletscan/internal/core/assets"
)

// Target is anything a payment can be directed at
// Implementations carry an asset identifier and render a human readable label
type Target interface {
	Asset() assets.Asset
	Label() string
}

// Address is a plain on-chain destination
type Address struct {
	Coin    assets.Asset
	Address string
}

// Asset returns the asset the address belongs to
func (a Address) Asset() assets.Asset { return a.Coin }

// Label renders the raw address, addresses are their own best label
func (a Address) Label() string { return a.Address }

// PrivateKey is spendable key material recognised during a scan
// It is not a payment destination, the pipeline filters it out of target sets
type PrivateKey struct {
	Coin assets.Asset
	WIF  string
}

// Asset returns the asset the key spends
func (k PrivateKey) Asset() assets.Asset { return k.Coin }

// Label never exposes the key material
func (k PrivateKey) Label() string { return k.Coin.DisplayName() + " private key" }

// Addresses filters ts down to address shaped targets, preserving order
func Addresses(ts []Target) []Target {
	out := make([]Target, 0, len(ts))
	for _, t := range ts {
		if _, ok := t.(Address); ok {
			out = append(out, t)
		}
	}
	return out
}

// ForAsset filters ts to targets of the given asset, preserving order
func ForAsset(ts []Target, a assets.Asset) []Target {
	out := make([]Target, 0, len(ts))
	for _, t := range ts {
		if t.Asset() == a {
			out = append(out, t)
		}
	}
	return out
}

// Labels renders the human readable label list for an interactive selector
func Labels(ts []Target) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Asset().DisplayName() + ": " + t.Label()
	}
	return out
}
