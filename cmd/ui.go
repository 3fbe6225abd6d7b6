package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/gifportal/internal/adapters/tui"
	"github.com/bnema/gifportal/internal/application"
	"github.com/bnema/gifportal/internal/domain"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive portal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stderr would corrupt the screen; log to ~/.gifportal/portal.log instead
			ctx, closeLog, err := app.logContext(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			approver := tui.NewModalApprover()
			session, err := app.newSession(approver)
			if err != nil {
				return err
			}

			err = tui.Run(ctx, session.portal, approver, tui.Options{
				Address: domain.ListAddress(app.cfg.List.Address),
			})
			if err != nil {
				return err
			}

			return settlePendingWrites(ctx, session.portal.Lists(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// settlePendingWrites waits for writes still in flight when the portal closes
// and reports how each one ended.
func settlePendingWrites(ctx context.Context, lists *application.ListSynchronizer, out io.Writer, spinnerOut io.Writer) error {
	var pending []string
	for _, entry := range lists.View().Entries {
		if entry.State == domain.EntryPending {
			pending = append(pending, entry.ID)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	label := fmt.Sprintf("Waiting for %d pending GIF(s)...", len(pending))
	err := runWaitSpinner(ctx, spinnerOut, label, func(context.Context) error {
		lists.Wait()
		return nil
	})
	if err != nil {
		return err
	}

	view := lists.View()
	var confirmed int
	var failed []domain.Entry
	for _, id := range pending {
		entry, ok := findEntry(view, id)
		switch {
		case !ok:
		case entry.State == domain.EntryFailed:
			failed = append(failed, entry)
		case entry.State == domain.EntryConfirmed:
			confirmed++
		}
	}

	if _, err := fmt.Fprintf(out, "%d confirmed, %d failed\n", confirmed, len(failed)); err != nil {
		return err
	}
	for _, entry := range failed {
		if _, err := fmt.Fprintf(out, "failed %s: %s\n", entry.Link, entry.Err); err != nil {
			return err
		}
	}
	return nil
}
