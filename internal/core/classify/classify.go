// Package classify decides what kind of payload a scan produced
//
// Classification is pure and synchronous. Rules run strictly in order and the
// first match wins. Order is a correctness requirement, a payload can satisfy
// more than one predicate by coincidence and the earlier rule must take it
package classify

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Kind is the shape assigned to a scanned payload
type Kind int

// Payload shapes in rule order
const (
	// HTTPLink is any payload starting with an http or https scheme
	HTTPLink Kind = iota

	// PaymentInvoiceLink is a payment URI whose request URL points at the invoice service
	PaymentInvoiceLink

	// StructuredLoginJSON is a JSON document used for the secured channel handshake
	StructuredLoginJSON

	// WalletConnectCandidate passed the pairing URI validity check
	WalletConnectCandidate

	// Unmatched falls through to the generic target parser
	Unmatched
)

// String returns a stable name for logs
func (k Kind) String() string {
	switch k {
	case HTTPLink:
		return "http_link"
	case PaymentInvoiceLink:
		return "payment_invoice_link"
	case StructuredLoginJSON:
		return "structured_login_json"
	case WalletConnectCandidate:
		return "walletconnect_candidate"
	default:
		return "unmatched"
	}
}

// PairingValidator reports whether raw is a syntactically valid pairing URI
// The concrete check lives outside this package, classification only needs the predicate
type PairingValidator func(raw string) bool

// Classifier applies the ordered rule set
type Classifier struct {
	invoiceBase  string
	pairingValid PairingValidator
}

// New builds a Classifier
// invoiceBase is the invoice service base path, eg "https://bitpay.com/i/"
// pairingValid may be nil in which case rule 4 never matches
func New(invoiceBase string, pairingValid PairingValidator) *Classifier {
	return &Classifier{invoiceBase: invoiceBase, pairingValid: pairingValid}
}

// Classify maps text to exactly one Kind
func (c *Classifier) Classify(text string) Kind {
	switch {
	case isHTTPLink(text):
		return HTTPLink
	case c.isInvoiceLink(text):
		return PaymentInvoiceLink
	case isStructuredJSON(text):
		return StructuredLoginJSON
	case c.pairingValid != nil && c.pairingValid(text):
		return WalletConnectCandidate
	default:
		return Unmatched
	}
}

func isHTTPLink(s string) bool {
	low := strings.ToLower(s)
	return strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://")
}

// isInvoiceLink normalizes a payment URI to its request URL and checks it
// against the configured invoice base path
func (c *Classifier) isInvoiceLink(s string) bool {
	if c.invoiceBase == "" {
		return false
	}
	return strings.Contains(PaymentRequestURL(s), c.invoiceBase)
}

// PaymentRequestURL extracts the BIP-72 "r" parameter from a payment URI
// Returns the empty string when the payload carries no request URL
func PaymentRequestURL(s string) string {
	q := strings.IndexByte(s, '?')
	if q < 0 || q+1 >= len(s) {
		return ""
	}
	vals, err := url.ParseQuery(s[q+1:])
	if err != nil {
		return ""
	}
	return vals.Get("r")
}

// isStructuredJSON accepts JSON objects and arrays only
// Bare JSON scalars are deliberately rejected, a numeric memo or a quoted
// address must still reach the generic parser
func isStructuredJSON(s string) bool {
	t := strings.TrimSpace(s)
	if len(t) == 0 || (t[0] != '{' && t[0] != '[') {
		return false
	}
	return json.Valid([]byte(t))
}
