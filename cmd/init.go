package cmd

import (
	"fmt"

	"github.com/bnema/gifportal/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(app *app) *cobra.Command {
	var (
		save bool
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new list account owned by the program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, closeLog, err := app.logContext(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			session, err := app.newSession(approverFor(yes, cmd.InOrStdin(), cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			if _, err := session.connect(ctx); err != nil {
				return err
			}

			address, signature, err := session.writer.InitializeList(ctx)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "created list account %s\nsignature %s\n", address, signature); err != nil {
				return err
			}

			if !save {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "set %s = %q in %s to use it\n", config.KeyListAddress, address, app.configDir)
				return err
			}

			if err := config.Save(app.configDir, config.KeyListAddress, address.String()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", config.KeyListAddress)
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the new address as list.address in config.toml")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Approve the wallet connection without prompting")
	return cmd
}
