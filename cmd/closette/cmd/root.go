// Package cmd implements the closette commands: the API server and a
// command-line client for it.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/closette/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "closette",
		Short: "Find secondhand fashion from a photo or a description",
		Long: "closette turns an image or a text description into a search query and\n" +
			"looks it up on Vinted, Depop and eBay at the same time.\n\n" +
			"Run `closette serve` for the API; the other commands talk to a running server.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "server config file (YAML); environment variables apply on top")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:3000", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(providersCmd())
	rootCmd.AddCommand(versionCmd())
}

// initConfig reads client settings from $HOME/.closette.yaml and
// CLOSETTE_* variables. Server settings come from --config instead.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigType("yaml")
	viper.SetConfigName(".closette")

	viper.SetEnvPrefix("CLOSETTE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
