// Package service implements the scan telemetry recorder
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"walletscan/internal/platform/logger"
	"walletscan/internal/services/telemetry/domain"
)

// Storage is the sink events are written to
type Storage interface {
	Write(ctx context.Context, e domain.Event) error
}

// Service implements domain.RecorderPort
type Service struct {
	Sink Storage
	log  logger.Logger
}

// New constructs a recorder with a required sink
func New(sink Storage, log logger.Logger) *Service {
	return &Service{Sink: sink, log: log.With().Str("component", "telemetry").Logger()}
}

// Record implements domain.RecorderPort
// Failures are logged and dropped, a scan never fails on telemetry
func (s *Service) Record(ctx context.Context, e domain.Event) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	if err := s.Sink.Write(ctx, e); err != nil {
		s.log.Warn().Err(err).Str("code", string(e.Code)).Msg("dropping scan event")
	}
}

// Nop discards events, used when ClickHouse is disabled
type Nop struct{}

// Record implements domain.RecorderPort
func (Nop) Record(context.Context, domain.Event) {}
