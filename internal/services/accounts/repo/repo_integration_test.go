//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"walletscan/internal/core/assets"
	"walletscan/internal/platform/store"
	"walletscan/internal/services/accounts/domain"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestAccountsFor_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	if _, err := s.PG.Exec(ctx, `
		CREATE TABLE accounts (
			id           UUID PRIMARY KEY,
			name         TEXT NOT NULL,
			asset        TEXT NOT NULL,
			custodial    BOOLEAN NOT NULL,
			can_send     BOOLEAN NOT NULL,
			balance_sats BIGINT NOT NULL DEFAULT 0,
			position     INT NOT NULL DEFAULT 0
		)
	`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	seed := `
		INSERT INTO accounts (id, name, asset, custodial, can_send, balance_sats, position) VALUES
		(gen_random_uuid(), 'Private Key Wallet', 'BTC', false, true, 150000, 0),
		(gen_random_uuid(), 'Trading Account',    'BTC', true,  true, 999000, 1),
		(gen_random_uuid(), 'Cold Storage',       'BTC', false, false, 5000000, 2),
		(gen_random_uuid(), 'BCH Wallet',         'BCH', false, true, 42000, 0)
	`
	if _, err := s.PG.Exec(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	st := NewPG().Bind(s.PG)

	all, err := st.AccountsFor(ctx, assets.BTC, domain.FilterAll)
	if err != nil {
		t.Fatalf("AccountsFor all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("FilterAll returned %d accounts, want 2 (cold storage cannot send)", len(all))
	}
	if all[0].Name != "Private Key Wallet" || all[1].Name != "Trading Account" {
		t.Fatalf("wrong order: %q %q", all[0].Name, all[1].Name)
	}

	nc, err := st.AccountsFor(ctx, assets.BTC, domain.FilterNonCustodial)
	if err != nil {
		t.Fatalf("AccountsFor non custodial: %v", err)
	}
	if len(nc) != 1 || nc[0].Name != "Private Key Wallet" {
		t.Fatalf("non custodial filter returned %+v", nc)
	}

	none, err := st.AccountsFor(ctx, assets.ETH, domain.FilterAll)
	if err != nil {
		t.Fatalf("AccountsFor empty: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no ETH accounts, got %d", len(none))
	}
}
