// Package repo provides the feature gate repository over the KV store
package repo

import (
	"context"

	"walletscan/internal/platform/store"
)

// keyPrefix namespaces gate toggles in the shared KV store
const keyPrefix = "feature:"

// KV reads toggles from the key value store
type KV struct {
	kv store.KV
}

// NewKV constructs a KV repo
func NewKV(kv store.KV) *KV { return &KV{kv: kv} }

// Lookup implements domain.LookupPort
func (r *KV) Lookup(ctx context.Context, feature string) (string, bool, error) {
	return r.kv.Get(ctx, keyPrefix+feature)
}
