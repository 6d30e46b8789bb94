package service

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	perr "walletscan/internal/platform/errors"
	"walletscan/internal/services/telemetry/domain"
)

type fakeSink struct {
	events []domain.Event
	err    error
}

func (f *fakeSink) Write(_ context.Context, e domain.Event) error {
	f.events = append(f.events, e)
	return f.err
}

func TestRecordFillsDefaults(t *testing.T) {
	f := &fakeSink{}
	svc := New(f, zerolog.New(io.Discard))

	svc.Record(context.Background(), domain.Event{Code: domain.CodeDeeplink, Deeplinked: true})

	if len(f.events) != 1 {
		t.Fatalf("sink saw %d events, want 1", len(f.events))
	}
	e := f.events[0]
	if e.ID == uuid.Nil || e.At.IsZero() {
		t.Fatalf("defaults not filled: %+v", e)
	}
	if e.Code != domain.CodeDeeplink || !e.Deeplinked {
		t.Fatalf("event mangled: %+v", e)
	}
}

func TestRecordSwallowsSinkErrors(t *testing.T) {
	f := &fakeSink{err: perr.Newf(perr.ErrorCodeUnavailable, "ch down")}
	svc := New(f, zerolog.New(io.Discard))

	// must not panic and must not surface the error anywhere
	svc.Record(context.Background(), domain.Event{Code: domain.CodeInvalid})
	if len(f.events) != 1 {
		t.Fatalf("sink saw %d events, want 1", len(f.events))
	}
}
