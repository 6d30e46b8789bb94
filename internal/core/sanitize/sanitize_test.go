package sanitize

import "testing"

func TestPayload(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain address untouched", "1BoatSLRHtKNngkdXEeobR76b53LETtpyT", "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"},
		{"case preserved", "0xAbCd", "0xAbCd"},
		{"trims whitespace", "  bitcoin:abc \n", "bitcoin:abc"},
		{"strips leading BOM", "\uFEFFbitcoin:abc", "bitcoin:abc"},
		{"strips zwj", "bit‍coin:abc", "bitcoin:abc"},
		{"drops invalid utf8", "abc\xffdef", "abcdef"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Payload(c.in); got != c.want {
				t.Fatalf("Payload(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
