package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <link>",
		Short: "Append a GIF link to the shared list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := domain.ParseMediaLink(args[0])
			if err != nil {
				return err
			}

			ctx, closeLog, err := app.logContext(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			session, err := app.newSession(nil)
			if err != nil {
				return err
			}
			if _, err := session.connectTrusted(ctx); err != nil {
				return err
			}

			lists := session.portal.Lists()
			// let the initial fetch land first so it cannot replace the new entry
			lists.Wait()

			entry, err := lists.AppendLocal(ctx, string(link))
			if err != nil {
				return err
			}

			if !lists.WritesThrough() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "added %s locally; list.write_through is off so it was not sent\n", entry.Link)
				return err
			}

			err = runWaitSpinner(ctx, cmd.ErrOrStderr(), "Waiting for confirmation...", func(context.Context) error {
				lists.Wait()
				return nil
			})
			if err != nil {
				return err
			}

			settled, ok := findEntry(lists.View(), entry.ID)
			if !ok {
				return errors.New("entry was replaced before its write settled")
			}
			if settled.State == domain.EntryFailed {
				return fmt.Errorf("add %s: %s", settled.Link, settled.Err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s\nsignature %s\n", settled.Link, settled.Signature)
			return err
		},
	}
}

func findEntry(view domain.ListView, id string) (domain.Entry, bool) {
	for _, entry := range view.Entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return domain.Entry{}, false
}
