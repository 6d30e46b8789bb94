package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeScanFailed, http.StatusUnprocessableEntity},
		{ErrorCodeInvoiceResolution, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnsupportedAsset, http.StatusBadRequest},
		{ErrorCodeFeatureDisabled, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestRetryable(t *testing.T) {
	// "try again" codes
	for _, c := range []ErrorCode{ErrorCodeScanFailed, ErrorCodeInvoiceResolution, ErrorCodeUnavailable} {
		if !Retryable(c) {
			t.Fatalf("Retryable(%v) = false, want true", c)
		}
	}
	// "not supported" codes are terminal
	for _, c := range []ErrorCode{ErrorCodeUnsupportedAsset, ErrorCodeFeatureDisabled, ErrorCodeUnknown} {
		if Retryable(c) {
			t.Fatalf("Retryable(%v) = true, want false", c)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeDB {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	e4 := Wrapf(src, ErrorCodeScanFailed, "nope %s", "here")
	// Error() includes message + ": " + orig
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeScanFailed {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithOp (copy-on-write)
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithOp(e5, "resolve")
	if oe, ok := As(e6); !ok || oe.Op() != "resolve" {
		t.Fatalf("WithOp failed")
	}
	if oe0, _ := As(e5); oe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}

	// Root digs to the deepest cause
	if Root(e4) != src {
		t.Fatalf("Root did not find deepest cause")
	}
}

func TestScanTaxonomySugar(t *testing.T) {
	if CodeOf(ScanFailedf("unparseable: %s", "garbage")) != ErrorCodeScanFailed {
		t.Fatalf("ScanFailedf code mismatch")
	}
	if CodeOf(UnsupportedAssetf("prefix %q", "xyz:")) != ErrorCodeUnsupportedAsset {
		t.Fatalf("UnsupportedAssetf code mismatch")
	}
	fd := FeatureDisabled("walletconnect")
	if CodeOf(fd) != ErrorCodeFeatureDisabled {
		t.Fatalf("FeatureDisabled code mismatch")
	}
	if fd.Error() != "walletconnect is not supported" {
		t.Fatalf("FeatureDisabled message = %q", fd.Error())
	}

	src := stderrs.New("502 from upstream")
	inv := InvoiceFailed(src)
	if CodeOf(inv) != ErrorCodeInvoiceResolution {
		t.Fatalf("InvoiceFailed code mismatch")
	}
	if stderrs.Unwrap(inv) != src {
		t.Fatalf("InvoiceFailed lost the upstream cause")
	}

	w := WireFrom(inv)
	if w.Code != ErrorCodeInvoiceResolution || !w.Retry {
		t.Fatalf("WireFrom(InvoiceFailed) = %+v", w)
	}
}
