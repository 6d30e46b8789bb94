// Package prompt implements interactive selection on a terminal
//
// Each prompt is a single fulfillment promise. A parseable choice resolves
// it, anything else (blank line, EOF, out of range input) cancels it, which
// the pipeline reads as nothing selected
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"walletscan/internal/platform/oneshot"
	accdom "walletscan/internal/services/accounts/domain"
)

// Selector prompts on a reader/writer pair, usually stdin and stdout
type Selector struct {
	in  *bufio.Reader
	out io.Writer
}

// New constructs a Selector
func New(in io.Reader, out io.Writer) *Selector {
	return &Selector{in: bufio.NewReader(in), out: out}
}

// PresentTargets implements the target selector port
func (s *Selector) PresentTargets(_ context.Context, labels []string) *oneshot.Promise[int] {
	p := oneshot.New[int]()
	go func() {
		idx, ok := s.ask("Select a destination", labels)
		if !ok {
			p.Cancel()
			return
		}
		p.Resolve(idx)
	}()
	return p
}

// PresentAccounts implements the account selector port
func (s *Selector) PresentAccounts(_ context.Context, accs []accdom.Account) *oneshot.Promise[accdom.Account] {
	p := oneshot.New[accdom.Account]()
	go func() {
		labels := make([]string, len(accs))
		for i, a := range accs {
			labels[i] = a.Label()
		}
		idx, ok := s.ask("Select a funding account", labels)
		if !ok {
			p.Cancel()
			return
		}
		p.Resolve(accs[idx])
	}()
	return p
}

// ask renders the numbered menu and reads one choice
// ok is false on dismissal, returned index is zero based
func (s *Selector) ask(title string, labels []string) (int, bool) {
	fmt.Fprintf(s.out, "%s (enter to skip):\n", title)
	for i, l := range labels {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, l)
	}
	fmt.Fprint(s.out, "> ")

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(labels) {
		return 0, false
	}
	return n - 1, true
}
