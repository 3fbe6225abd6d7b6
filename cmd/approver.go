package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/ports"
)

// promptApprover asks on the terminal before a wallet trusts this app.
type promptApprover struct {
	in  io.Reader
	out io.Writer
}

var _ ports.ConnectionApprover = promptApprover{}

func (p promptApprover) ApproveConnection(ctx context.Context, identity domain.Identity) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "Allow gifportal to use wallet %s? [y/N] ", identity); err != nil {
		return false, err
	}

	answers := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		if err != nil && line == "" {
			errs <- fmt.Errorf("read approval answer: %w", err)
			return
		}
		answers <- line
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errs:
		return false, err
	case answer := <-answers:
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

type autoApprover struct{}

func (autoApprover) ApproveConnection(context.Context, domain.Identity) (bool, error) {
	return true, nil
}

func approverFor(yes bool, in io.Reader, out io.Writer) ports.ConnectionApprover {
	if yes {
		return autoApprover{}
	}
	return promptApprover{in: in, out: out}
}
