package cmd

import (
	"github.com/spf13/cobra"
)

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the server's marketplace providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			providers, err := newClient().Providers(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), providers)
			}
			return printProvidersTable(cmd.OutOrStdout(), providers)
		},
	}
}
