package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the local keypair wallet",
	}

	cmd.AddCommand(
		newWalletNewCmd(app),
		newWalletImportCmd(app),
		newWalletShowCmd(app),
		newWalletForgetCmd(app),
	)

	return cmd
}

func newWalletNewCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new keypair and store it in the secret store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.keypair(nil).Generate(cmd.Context(), force)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created wallet %s\n", identity)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing wallet")
	return cmd
}

func newWalletImportCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <base58-key|keygen-file>",
		Short: "Import a private key as base58 or from a solana-keygen JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := app.keypair(nil).Import(cmd.Context(), args[0], force)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported wallet %s\n", identity)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing wallet")
	return cmd
}

func newWalletShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored wallet address and whether this app is trusted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.keypair(nil).Show(cmd.Context())
			if err != nil {
				return walletError(err)
			}

			trusted, err := app.trust.IsTrusted(cmd.Context(), identity)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\ttrusted=%t\n", identity, trusted)
			return err
		},
	}
}

func newWalletForgetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Delete the stored key and revoke its trust",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.keypair(nil).Forget(cmd.Context())
			if err != nil {
				return walletError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "forgot wallet %s\n", identity)
			return err
		},
	}
}
