// Package service implements the feature gate
package service

import (
	"context"
	"strings"

	perr "walletscan/internal/platform/errors"
	dom "walletscan/internal/services/gate/domain"
)

// Config for the gate service
type Config struct {
	// DefaultEnabled is the answer for features with no stored toggle
	DefaultEnabled bool
}

// Service implements domain.GatePort against a LookupPort
type Service struct {
	Repo dom.LookupPort
	Cfg  Config
}

// New constructs a gate service with a required lookup repo
func New(repo dom.LookupPort, cfg Config) *Service {
	return &Service{Repo: repo, Cfg: cfg}
}

// Enabled implements domain.GatePort
// Every call reads the store, results are never cached
func (s *Service) Enabled(ctx context.Context, feature string) (bool, error) {
	val, found, err := s.Repo.Lookup(ctx, feature)
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeUnavailable, "feature gate lookup %q", feature)
	}
	if !found {
		return s.Cfg.DefaultEnabled, nil
	}
	return parseToggle(val, feature)
}

func parseToggle(val, feature string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "on", "enabled", "yes":
		return true, nil
	case "0", "false", "off", "disabled", "no":
		return false, nil
	default:
		return false, perr.Newf(perr.ErrorCodeInvalidArgument, "feature gate %q holds unparseable value %q", feature, val)
	}
}

// Static is a fixed gate used by tests and the offline resolver CLI
type Static bool

// Enabled implements domain.GatePort
func (s Static) Enabled(context.Context, string) (bool, error) { return bool(s), nil }
