// Package coinaddr parses raw scan text into candidate targets across the
// supported assets
//
// Parsing is permissive about payment URI wrappers and strict about address
// checksums. A legacy base58 address is valid on both the BTC and BCH chains
// so a bare one yields a candidate per chain and disambiguation happens later
package coinaddr

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	ethcommon "github.com/ethereum/go-ethereum/common"

	"walletscan/internal/core/assets"
	"walletscan/internal/core/target"
	perr "walletscan/internal/platform/errors"
)

// Parser decodes scan text into targets
type Parser struct {
	net *chaincfg.Params
}

// New builds a mainnet Parser
func New() *Parser { return &Parser{net: &chaincfg.MainNetParams} }

// NewWithParams builds a Parser against explicit chain params, used by tests
func NewWithParams(net *chaincfg.Params) *Parser { return &Parser{net: net} }

// Parse decodes text into zero or more capability tagged targets
// An unrecognisable payload is an error, the caller owns the final wrapping
func (p *Parser) Parse(ctx context.Context, text string) ([]target.Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scheme, addr := splitPaymentURI(text)
	if addr == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "empty address payload")
	}

	// spendable key material is recognised but tagged as a key, not an address
	if _, err := btcutil.DecodeWIF(addr); err == nil {
		return []target.Target{target.PrivateKey{Coin: assets.BTC, WIF: addr}}, nil
	}

	if isEthereum(scheme, addr) {
		return []target.Target{target.Address{Coin: assets.ETH, Address: addr}}, nil
	}

	if _, err := btcutil.DecodeAddress(addr, p.net); err == nil {
		return p.bitcoinFamily(scheme, addr)
	}

	return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "no supported asset recognises %q", addr)
}

// bitcoinFamily assigns chain membership for an address that decoded under
// the bitcoin params
func (p *Parser) bitcoinFamily(scheme, addr string) ([]target.Target, error) {
	switch scheme {
	case "bitcoin":
		return []target.Target{target.Address{Coin: assets.BTC, Address: addr}}, nil
	case "bitcoincash":
		return []target.Target{target.Address{Coin: assets.BCH, Address: addr}}, nil
	case "":
		// bech32 encodes its chain in the hrp, base58 does not
		if strings.HasPrefix(strings.ToLower(addr), p.net.Bech32HRPSegwit+"1") {
			return []target.Target{target.Address{Coin: assets.BTC, Address: addr}}, nil
		}
		return []target.Target{
			target.Address{Coin: assets.BTC, Address: addr},
			target.Address{Coin: assets.BCH, Address: addr},
		}, nil
	default:
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "address scheme %q does not match a supported asset", scheme)
	}
}

func isEthereum(scheme, addr string) bool {
	if scheme != "" && scheme != "ethereum" {
		return false
	}
	return strings.HasPrefix(addr, "0x") && ethcommon.IsHexAddress(addr)
}

// splitPaymentURI peels an optional payment URI wrapper off text
// "bitcoin:1Boat?amount=0.1" becomes ("bitcoin", "1Boat")
// a bare address returns ("", addr)
func splitPaymentURI(text string) (scheme, addr string) {
	addr = strings.TrimSpace(text)
	if i := strings.IndexByte(addr, ':'); i > 0 && isAlphaScheme(addr[:i]) {
		scheme = strings.ToLower(addr[:i])
		addr = addr[i+1:]
	}
	addr = strings.TrimPrefix(addr, "//")
	if q := strings.IndexByte(addr, '?'); q >= 0 {
		addr = addr[:q]
	}
	return scheme, addr
}

func isAlphaScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 1
}
