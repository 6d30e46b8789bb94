package target

import (
	"strings"
	"testing"

	"walletscan/internal/core/assets"
)

func TestAddressesFiltersKeys(t *testing.T) {
	ts := []Target{
		Address{Coin: assets.BTC, Address: "1Boat"},
		PrivateKey{Coin: assets.BTC, WIF: "L1aW4aubDFB7yfras2S1mN3bqg9nwySY8nkoLmJebSLD5BWv3ENZ"},
		Address{Coin: assets.ETH, Address: "0xabc"},
	}
	got := Addresses(ts)
	if len(got) != 2 {
		t.Fatalf("Addresses kept %d targets, want 2", len(got))
	}
	if got[0].Asset() != assets.BTC || got[1].Asset() != assets.ETH {
		t.Fatalf("order not preserved: %v %v", got[0].Asset(), got[1].Asset())
	}
}

func TestForAsset(t *testing.T) {
	ts := []Target{
		Address{Coin: assets.BTC, Address: "1Boat"},
		Address{Coin: assets.BCH, Address: "1Boat"},
	}
	got := ForAsset(ts, assets.BCH)
	if len(got) != 1 || got[0].Asset() != assets.BCH {
		t.Fatalf("ForAsset returned %v", got)
	}
	if got := ForAsset(ts, assets.ETH); len(got) != 0 {
		t.Fatalf("expected no ETH targets, got %v", got)
	}
}

func TestPrivateKeyLabelHidesMaterial(t *testing.T) {
	k := PrivateKey{Coin: assets.BTC, WIF: "L1aW4aubDFB7yfras2S1mN3bqg9nwySY8nkoLmJebSLD5BWv3ENZ"}
	if strings.Contains(k.Label(), k.WIF) {
		t.Fatalf("label leaks key material: %q", k.Label())
	}
}

func TestLabels(t *testing.T) {
	ts := []Target{Address{Coin: assets.BTC, Address: "1Boat"}}
	got := Labels(ts)
	if len(got) != 1 || got[0] != "Bitcoin: 1Boat" {
		t.Fatalf("Labels = %v", got)
	}
}
