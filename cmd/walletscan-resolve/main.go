// walletscan-resolve resolves a single scanned payload from the command line
// and, when the result is ambiguous, narrows it interactively on the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"walletscan/internal/adapters/coinaddr"
	"walletscan/internal/adapters/prompt"
	"walletscan/internal/adapters/walletconnect"
	"walletscan/internal/core/assets"
	"walletscan/internal/platform/config"
	perr "walletscan/internal/platform/errors"
	"walletscan/internal/platform/logger"
	"walletscan/internal/platform/store"
	accrepo "walletscan/internal/services/accounts/repo"
	accsvc "walletscan/internal/services/accounts/service"
	gaterepo "walletscan/internal/services/gate/repo"
	gatesvc "walletscan/internal/services/gate/service"
	invclient "walletscan/internal/services/invoice/client"
	invmod "walletscan/internal/services/invoice/module"
	invsvc "walletscan/internal/services/invoice/service"
	scandom "walletscan/internal/services/scan/domain"
	scansvc "walletscan/internal/services/scan/service"
	telsvc "walletscan/internal/services/telemetry/service"
)

func main() {
	deeplink := flag.Bool("deeplink", false, "treat the payload as arriving via deep link")
	asset := flag.String("asset", "", "narrow ambiguous targets to one asset (BTC, BCH, ETH)")
	pickAccount := flag.Bool("account", false, "also choose a funding account (needs SERVICE_PGSQL_DBURL)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: walletscan-resolve [flags] <payload>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	payload := flag.Arg(0)

	root := config.New()
	l := logger.Get()
	ctx := context.Background()

	invOpts := invmod.FromConfig(root)
	fetcher := invclient.New(invclient.Config{
		BaseURL: invOpts.BaseURL,
		Timeout: invOpts.Timeout,
	}, *l)

	sel := prompt.New(os.Stdin, os.Stdout)

	collab := scansvc.Collaborators{
		Invoice:    invsvc.New(fetcher, invsvc.Config{BaseURL: invOpts.BaseURL}),
		Gate:       gatesvc.Static(root.MayBool("CORE_GATE_DEFAULT_ENABLED", true)),
		Parser:     coinaddr.New(),
		Recorder:   telsvc.Nop{},
		PairValid:  walletconnect.New().IsValidURI,
		Targets:    sel,
		AccountsUI: sel,
	}

	// postgres and redis are optional for a one shot resolve
	var st *store.Store
	if pgURL := root.MayString("SERVICE_PGSQL_DBURL", ""); pgURL != "" {
		kvURL := root.MayString("SERVICE_REDIS_DBURL", "")
		var err error
		st, err = store.Open(ctx, store.Config{
			PG: store.PGConfig{Enabled: true, URL: pgURL, MaxConns: 2},
			KV: store.KVConfig{Enabled: kvURL != "", URL: kvURL},
		}, store.WithLogger(*l))
		if err != nil {
			l.Fatal().Err(err).Msg("store.Open failed")
		}
		defer st.Close(ctx) //nolint:errcheck

		collab.Accounts = accsvc.New(st.PG, accrepo.NewPG())
		if st.KV != nil {
			collab.Gate = gatesvc.New(gaterepo.NewKV(st.KV), gatesvc.Config{
				DefaultEnabled: root.MayBool("CORE_GATE_DEFAULT_ENABLED", false),
			})
		}
	}

	proc := scansvc.New(scansvc.Config{InvoiceBase: invOpts.BaseURL}, collab, *l)

	res, err := proc.ProcessScan(ctx, scandom.Payload{Text: payload, Deeplinked: *deeplink})
	if err != nil {
		w := perr.WireFrom(err)
		if w.Retry {
			fmt.Fprintf(os.Stderr, "scan failed: %s (try again with a fresh scan)\n", w.Message)
		} else {
			fmt.Fprintf(os.Stderr, "scan rejected: %s\n", w.Message)
		}
		os.Exit(1)
	}

	switch r := res.(type) {
	case scandom.HTTPLink:
		fmt.Printf("http link: %s\n", r.URI)

	case scandom.SecuredChannelLogin:
		fmt.Printf("secured channel login handshake: %s\n", r.Handshake)

	case scandom.WalletConnectRequest:
		fmt.Printf("walletconnect pairing request: %s\n", r.Data)

	case scandom.ImportedKey:
		fmt.Printf("importable %s\n", r.Key.Label())

	case scandom.TxTargets:
		resolveTargets(ctx, proc, r, assets.Asset(*asset), *pickAccount)
	}
}

func resolveTargets(
	ctx context.Context,
	proc scandom.ProcessorPort,
	r scandom.TxTargets,
	coin assets.Asset,
	pickAccount bool,
) {
	tgt, ok, err := proc.ChooseTarget(ctx, r.Targets, coin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "target selection failed: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("nothing selected")
		return
	}
	fmt.Printf("target: %s (%s)\n", tgt.Label(), tgt.Asset().DisplayName())

	if !pickAccount {
		return
	}

	acc, ok, err := proc.ChooseAccount(ctx, tgt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "account selection failed: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("no eligible source account")
		return
	}
	fmt.Printf("fund from: %s\n", acc.Label())
}
