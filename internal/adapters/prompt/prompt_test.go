package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"walletscan/internal/core/assets"
	accdom "walletscan/internal/services/accounts/domain"
)

func TestPresentTargetsPick(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("2\n"), &out)

	idx, ok, err := s.PresentTargets(context.Background(), []string{"Bitcoin: 1Boat", "Bitcoin Cash: 1Boat"}).
		Await(context.Background())
	if err != nil || !ok || idx != 1 {
		t.Fatalf("got (%d, %v, %v)", idx, ok, err)
	}
	if !strings.Contains(out.String(), "1) Bitcoin: 1Boat") {
		t.Fatalf("menu not rendered:\n%s", out.String())
	}
}

func TestPresentTargetsDismissed(t *testing.T) {
	cases := map[string]string{
		"blank line":   "\n",
		"garbage":      "abc\n",
		"out of range": "9\n",
		"eof":          "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			s := New(strings.NewReader(input), &out)
			_, ok, err := s.PresentTargets(context.Background(), []string{"a", "b"}).Await(context.Background())
			if err != nil {
				t.Fatalf("dismissal must not error: %v", err)
			}
			if ok {
				t.Fatalf("input %q reported a pick", input)
			}
		})
	}
}

func TestPresentAccountsPick(t *testing.T) {
	accs := []accdom.Account{
		{ID: uuid.New(), Name: "Private Key Wallet", Coin: assets.BTC},
		{ID: uuid.New(), Name: "Trading Account", Coin: assets.BTC},
	}
	var out bytes.Buffer
	s := New(strings.NewReader("1\n"), &out)

	acc, ok, err := s.PresentAccounts(context.Background(), accs).Await(context.Background())
	if err != nil || !ok || acc.ID != accs[0].ID {
		t.Fatalf("got (%v, %v, %v)", acc, ok, err)
	}
}
