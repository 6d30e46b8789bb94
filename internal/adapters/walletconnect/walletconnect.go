// Package walletconnect validates pairing URIs per EIP-1328
//
// uri = "wc" ":" topic [ "@" version ] [ "?" parameters ]
// v1 pairing requires bridge and key parameters, v2 requires relay-protocol
// and symKey. Validation is syntactic only, no relay is contacted
package walletconnect

import (
	"net/url"
	"strconv"
	"strings"
)

// Validator checks pairing URI syntax
type Validator struct{}

// New builds a Validator
func New() *Validator { return &Validator{} }

// IsValidURI reports whether raw is a well formed pairing URI
func (v *Validator) IsValidURI(raw string) bool {
	rest, ok := strings.CutPrefix(raw, "wc:")
	if !ok {
		return false
	}

	var params url.Values
	if q := strings.IndexByte(rest, '?'); q >= 0 {
		p, err := url.ParseQuery(rest[q+1:])
		if err != nil {
			return false
		}
		params = p
		rest = rest[:q]
	}

	topic, verStr, hasVer := strings.Cut(rest, "@")
	if topic == "" {
		return false
	}
	version := 1
	if hasVer {
		n, err := strconv.Atoi(verStr)
		if err != nil || n < 1 {
			return false
		}
		version = n
	}

	switch version {
	case 1:
		return params.Get("bridge") != "" && params.Get("key") != ""
	case 2:
		return params.Get("relay-protocol") != "" && params.Get("symKey") != ""
	default:
		return false
	}
}
