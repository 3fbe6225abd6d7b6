package cmd

import (
	"fmt"

	"github.com/bnema/gifportal/internal/application"
	"github.com/bnema/gifportal/internal/logging"
	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet, asking for approval the first time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, closeLog, err := app.logContext(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()
			ctx = logging.WithComponent(ctx, "wallet_session")

			approver := approverFor(yes, cmd.InOrStdin(), cmd.OutOrStdout())
			session := application.NewWalletSession(app.keypair(approver))

			session.ProbeExistingTrust(ctx)
			if identity, ok := session.Identity(); ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "already connected as %s\n", identity)
				return err
			}

			identity, err := session.Connect(ctx)
			if err != nil {
				return walletError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "connected as %s\n", identity)
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Approve the connection without prompting")
	return cmd
}
