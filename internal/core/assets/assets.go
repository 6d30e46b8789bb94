// Package assets holds the supported asset identifiers and the payment URI prefix table
package assets

import "strings"

// Asset identifies a supported cryptocurrency
type Asset string

// Supported assets
const (
	BTC Asset = "BTC"
	BCH Asset = "BCH"
	ETH Asset = "ETH"
)

// String returns the ticker
func (a Asset) String() string { return string(a) }

// DisplayName returns the human readable asset name
func (a Asset) DisplayName() string {
	switch a {
	case BTC:
		return "Bitcoin"
	case BCH:
		return "Bitcoin Cash"
	case ETH:
		return "Ethereum"
	default:
		return string(a)
	}
}

// invoicePrefixes maps payment URI scheme prefixes to assets
// checked in declaration order so longer prefixes must come first
var invoicePrefixes = []struct {
	prefix string
	asset  Asset
}{
	{"bitcoincash:", BCH},
	{"bitcoin:", BTC},
}

// FromInvoicePrefix maps the leading payment URI scheme of raw to an asset
// Returns ok=false when the prefix is not in the table, the caller decides
// whether that is fatal. Matching is case insensitive per RFC 3986 schemes
func FromInvoicePrefix(raw string) (Asset, bool) {
	low := strings.ToLower(raw)
	for _, p := range invoicePrefixes {
		if strings.HasPrefix(low, p.prefix) {
			return p.asset, true
		}
	}
	return "", false
}

// URIScheme returns the payment URI scheme for a, without the colon
func URIScheme(a Asset) string {
	switch a {
	case BTC:
		return "bitcoin"
	case BCH:
		return "bitcoincash"
	case ETH:
		return "ethereum"
	default:
		return strings.ToLower(string(a))
	}
}

// All returns the supported assets in stable order
func All() []Asset { return []Asset{BTC, BCH, ETH} }

// IsSupported reports whether a names a known asset
func IsSupported(a Asset) bool {
	switch a {
	case BTC, BCH, ETH:
		return true
	}
	return false
}
