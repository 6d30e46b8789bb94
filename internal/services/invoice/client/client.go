// Package client fetches invoices over the BitPay style payment protocol
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"walletscan/internal/core/assets"
	perr "walletscan/internal/platform/errors"
	"walletscan/internal/platform/logger"
	dom "walletscan/internal/services/invoice/domain"
)

// acceptPaymentRequest selects the JSON payment request representation
const acceptPaymentRequest = "application/payment-request"

// Config for the HTTP fetcher
type Config struct {
	// BaseURL is the invoice endpoint base, eg "https://bitpay.com/i/"
	BaseURL string
	Timeout time.Duration
}

// Client implements domain.FetcherPort over HTTP
type Client struct {
	cfg  Config
	http *http.Client
	log  logger.Logger
}

// New constructs a Client
func New(cfg Config, log logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("component", "invoice.client").Logger(),
	}
}

// paymentRequest is the wire shape of a payment protocol invoice
type paymentRequest struct {
	Network  string `json:"network"`
	Currency string `json:"currency"`
	Outputs  []struct {
		Amount  int64  `json:"amount"`
		Address string `json:"address"`
	} `json:"outputs"`
	Memo      string    `json:"memo"`
	Expires   time.Time `json:"expires"`
	PaymentID string    `json:"paymentId"`
}

// FetchInvoice implements domain.FetcherPort
func (c *Client) FetchInvoice(ctx context.Context, coin assets.Asset, invoiceID string) (dom.Invoice, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + invoiceID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return dom.Invoice{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "build invoice request")
	}
	req.Header.Set("Accept", acceptPaymentRequest)

	resp, err := c.http.Do(req)
	if err != nil {
		return dom.Invoice{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "invoice service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		c.log.Warn().Str("invoice_id", invoiceID).Int("status", resp.StatusCode).Msg("invoice fetch rejected")
		return dom.Invoice{}, perr.Newf(perr.ErrorCodeUnavailable, "invoice service returned %d", resp.StatusCode)
	}

	var pr paymentRequest
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&pr); err != nil {
		return dom.Invoice{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode payment request")
	}
	if len(pr.Outputs) == 0 {
		return dom.Invoice{}, perr.Newf(perr.ErrorCodeJSON, "payment request %s has no outputs", invoiceID)
	}

	inv := dom.Invoice{
		ID:         pr.PaymentID,
		Coin:       assets.Asset(strings.ToUpper(pr.Currency)),
		Address:    pr.Outputs[0].Address,
		AmountSats: pr.Outputs[0].Amount,
		Memo:       pr.Memo,
		PaymentURL: url,
		Expires:    pr.Expires,
	}
	if inv.ID == "" {
		inv.ID = invoiceID
	}

	c.log.Debug().
		Str("invoice_id", inv.ID).
		Str("asset", inv.Coin.String()).
		Int64("amount", inv.AmountSats).
		Msg("invoice fetched")

	return inv, nil
}
