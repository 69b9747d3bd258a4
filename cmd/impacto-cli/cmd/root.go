// Package cmd implements the impacto command line: content checks, lead
// backend access, the event catalogue and module scaffolding.
//
// Settings resolve from flags first, then the environment (the same
// variables the server reads), then an optional .impacto.yaml file.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyAPIURL     = "api-url"
	keyContentDir = "content-dir"
	keyTimeout    = "timeout"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "impacto-cli",
	Short: "Impacto site tooling",
	Long: `impacto-cli is the command-line companion of the Impacto site.

Available commands:
  content      Validate and list the content collections
  lead         Submit or list leads against the lead backend
  events       List the events published on the internal bus
  new-module   Scaffold a new application module

Use "impacto-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.impacto.yaml)")
	flags.String(keyAPIURL, "http://localhost:8000", "lead backend base URL")
	flags.String(keyContentDir, "", "content directory (embedded defaults when empty)")
	flags.Duration(keyTimeout, 0, "request timeout for backend calls (0 uses the client default)")

	_ = viper.BindPFlag(keyAPIURL, flags.Lookup(keyAPIURL))
	_ = viper.BindPFlag(keyContentDir, flags.Lookup(keyContentDir))
	_ = viper.BindPFlag(keyTimeout, flags.Lookup(keyTimeout))
	_ = viper.BindEnv(keyAPIURL, "PUBLIC_API_BASE_URL")
	_ = viper.BindEnv(keyContentDir, "CONTENT_DIR")
	_ = viper.BindEnv(keyTimeout, "LEAD_TIMEOUT")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".impacto")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
