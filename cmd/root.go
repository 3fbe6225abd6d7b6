package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portal",
		Short:         "GIF portal: share GIF links on a Solana list account",
		Long:          "portal connects a local Solana keypair wallet, reads the shared GIF list stored in a program account, and appends new links to it from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newWalletCmd(app),
		newConnectCmd(app),
		newListCmd(app),
		newAddCmd(app),
		newInitCmd(app),
		newUICmd(app),
	)

	return rootCmd
}
