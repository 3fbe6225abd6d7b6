package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/gifportal/internal/adapters/render/gallery"
	"github.com/bnema/gifportal/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and print the shared GIF list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			lists.Wait()

			view := lists.View()
			if !view.Available {
				return fmt.Errorf("%w: list account %s", domain.ErrFetchFailed, lists.Address())
			}

			return writeListOutput(cmd, app, view, lists.Address(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the list as JSON")
	return cmd
}

type listItemOutput struct {
	ID        string `json:"id"`
	Link      string `json:"link"`
	Submitter string `json:"submitter"`
	State     string `json:"state"`
	Signature string `json:"signature,omitempty"`
	Error     string `json:"error,omitempty"`
}

type listOutput struct {
	Address string           `json:"address"`
	Count   int              `json:"count"`
	Items   []listItemOutput `json:"items"`
}

func writeListOutput(cmd *cobra.Command, app *app, view domain.ListView, address domain.ListAddress, asJSON bool) error {
	if asJSON {
		out := listOutput{Address: address.String(), Count: len(view.Entries), Items: make([]listItemOutput, 0, len(view.Entries))}
		for _, entry := range view.Entries {
			out.Items = append(out.Items, listItemOutput{
				ID:        entry.ID,
				Link:      string(entry.Link),
				Submitter: entry.Submitter.String(),
				State:     string(entry.State),
				Signature: entry.Signature,
				Error:     entry.Err,
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.listRenderer(view, gallery.RenderOptions{Address: address})
	if err != nil {
		return fmt.Errorf("render list: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
