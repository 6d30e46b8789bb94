// Package domain holds the scan pipeline vocabulary
package domain

import (
	"walletscan/internal/core/target"
)

// Payload is one scanned string plus how it arrived
// Deeplinked is true when the payload came in through a deep link rather
// than a live camera capture
type Payload struct {
	Text       string
	Deeplinked bool
}

// Result is the closed set of scan outcomes
// Exactly one variant is produced per resolution and it is never re-classified
type Result interface {
	// Deeplinked reports whether the originating scan was deep linked
	Deeplinked() bool

	sealed()
}

// HTTPLink is a plain web link
type HTTPLink struct {
	URI      string
	Deeplink bool
}

// TxTargets carries the candidate payment destinations a scan resolved to
// The set may be empty, an actionless but valid outcome
type TxTargets struct {
	Targets  []target.Target
	Deeplink bool
}

// ImportedKey is spendable key material recognised during a scan
type ImportedKey struct {
	Key target.PrivateKey
}

// SecuredChannelLogin is a handshake payload for the secured channel flow
type SecuredChannelLogin struct {
	Handshake string
}

// WalletConnectRequest is a raw pairing URI accepted by the feature gate
type WalletConnectRequest struct {
	Data string
}

// Deeplinked implements Result
func (r HTTPLink) Deeplinked() bool { return r.Deeplink }

// Deeplinked implements Result
func (r TxTargets) Deeplinked() bool { return r.Deeplink }

// Deeplinked implements Result, key imports never arrive via deep link
func (ImportedKey) Deeplinked() bool { return false }

// Deeplinked implements Result, logins never arrive via deep link
func (SecuredChannelLogin) Deeplinked() bool { return false }

// Deeplinked implements Result, pairing requests never arrive via deep link
func (WalletConnectRequest) Deeplinked() bool { return false }

func (HTTPLink) sealed()             {}
func (TxTargets) sealed()            {}
func (ImportedKey) sealed()          {}
func (SecuredChannelLogin) sealed()  {}
func (WalletConnectRequest) sealed() {}
