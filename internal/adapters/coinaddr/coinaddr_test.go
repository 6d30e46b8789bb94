package coinaddr

import (
	"context"
	"testing"

	"walletscan/internal/core/assets"
	"walletscan/internal/core/target"
)

const (
	btcLegacy = "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"
	btcP2SH   = "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"
	btcBech32 = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	ethAddr   = "0x52908400098527886E0F7030069857D2E4169EE7"
	btcWIF    = "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"
)

func mustParse(t *testing.T, in string) []target.Target {
	t.Helper()
	got, err := New().Parse(context.Background(), in)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", in, err)
	}
	return got
}

func assetsOf(ts []target.Target) []assets.Asset {
	out := make([]assets.Asset, len(ts))
	for i, x := range ts {
		out[i] = x.Asset()
	}
	return out
}

func TestBareLegacyAddressIsAmbiguous(t *testing.T) {
	got := mustParse(t, btcLegacy)
	as := assetsOf(got)
	if len(as) != 2 || as[0] != assets.BTC || as[1] != assets.BCH {
		t.Fatalf("bare legacy address parsed as %v, want [BTC BCH]", as)
	}
	for _, x := range got {
		if x.Label() != btcLegacy {
			t.Fatalf("address mangled: %q", x.Label())
		}
	}
}

func TestBech32IsBTCOnly(t *testing.T) {
	got := mustParse(t, btcBech32)
	as := assetsOf(got)
	if len(as) != 1 || as[0] != assets.BTC {
		t.Fatalf("bech32 parsed as %v, want [BTC]", as)
	}
}

func TestPaymentURISchemePinsTheChain(t *testing.T) {
	cases := []struct {
		in   string
		want assets.Asset
	}{
		{"bitcoin:" + btcLegacy + "?amount=0.1", assets.BTC},
		{"bitcoincash:" + btcLegacy, assets.BCH},
		{"ethereum:" + ethAddr, assets.ETH},
	}
	for _, tc := range cases {
		got := mustParse(t, tc.in)
		if len(got) != 1 || got[0].Asset() != tc.want {
			t.Fatalf("Parse(%q) = %v, want single %v", tc.in, assetsOf(got), tc.want)
		}
	}
}

func TestP2SH(t *testing.T) {
	got := mustParse(t, "bitcoin:"+btcP2SH)
	if len(got) != 1 || got[0].Asset() != assets.BTC {
		t.Fatalf("p2sh parse = %v", assetsOf(got))
	}
}

func TestEthereumAddress(t *testing.T) {
	got := mustParse(t, ethAddr)
	if len(got) != 1 || got[0].Asset() != assets.ETH {
		t.Fatalf("eth parse = %v", assetsOf(got))
	}
}

func TestWIFTaggedAsKeyNotAddress(t *testing.T) {
	got := mustParse(t, btcWIF)
	if len(got) != 1 {
		t.Fatalf("wif parse returned %d targets", len(got))
	}
	if _, ok := got[0].(target.PrivateKey); !ok {
		t.Fatalf("wif parsed as %T, want target.PrivateKey", got[0])
	}
	if len(target.Addresses(got)) != 0 {
		t.Fatalf("key material must not survive the address filter")
	}
}

func TestUnrecognisablePayloadErrors(t *testing.T) {
	for _, in := range []string{
		"definitely not an address",
		"1BoatSLRHtKNngkdXEeobR76b53LETtpyX", // bad checksum
		"litecoin:" + btcLegacy,              // unsupported scheme
		"",
	} {
		if _, err := New().Parse(context.Background(), in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestParseHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Parse(ctx, btcLegacy); err == nil {
		t.Fatalf("expected context error")
	}
}
