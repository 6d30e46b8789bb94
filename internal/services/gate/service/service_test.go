package service

import (
	"context"
	"testing"

	perr "walletscan/internal/platform/errors"
	dom "walletscan/internal/services/gate/domain"
)

type fakeLookup struct {
	calls int
	val   string
	found bool
	err   error
}

func (f *fakeLookup) Lookup(context.Context, string) (string, bool, error) {
	f.calls++
	return f.val, f.found, f.err
}

func TestEnabledParsesToggleValues(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"1", true}, {"true", true}, {"on", true}, {"Enabled", true},
		{"0", false}, {"false", false}, {"off", false}, {"disabled", false},
	}
	for _, tc := range cases {
		f := &fakeLookup{val: tc.val, found: true}
		got, err := New(f, Config{}).Enabled(context.Background(), dom.FeatureWalletConnect)
		if err != nil {
			t.Fatalf("Enabled with value %q failed: %v", tc.val, err)
		}
		if got != tc.want {
			t.Fatalf("value %q parsed as %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestMissingToggleFallsBackToDefault(t *testing.T) {
	f := &fakeLookup{found: false}
	got, err := New(f, Config{DefaultEnabled: true}).Enabled(context.Background(), dom.FeatureWalletConnect)
	if err != nil || !got {
		t.Fatalf("missing toggle with default enabled = (%v, %v)", got, err)
	}

	got, err = New(f, Config{}).Enabled(context.Background(), dom.FeatureWalletConnect)
	if err != nil || got {
		t.Fatalf("missing toggle with default disabled = (%v, %v)", got, err)
	}
}

func TestGarbageToggleIsAnError(t *testing.T) {
	f := &fakeLookup{val: "maybe", found: true}
	_, err := New(f, Config{}).Enabled(context.Background(), dom.FeatureWalletConnect)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}

func TestLookupErrorSurfaces(t *testing.T) {
	f := &fakeLookup{err: perr.Newf(perr.ErrorCodeUnavailable, "kv down")}
	_, err := New(f, Config{}).Enabled(context.Background(), dom.FeatureWalletConnect)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want Unavailable, got %v", err)
	}
}

func TestEveryCallHitsTheStore(t *testing.T) {
	f := &fakeLookup{val: "on", found: true}
	svc := New(f, Config{})
	for i := 0; i < 3; i++ {
		if _, err := svc.Enabled(context.Background(), dom.FeatureWalletConnect); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if f.calls != 3 {
		t.Fatalf("lookup called %d times, want 3 (no caching)", f.calls)
	}
}
