// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "robdd",
	Short: "Build and inspect reduced ordered binary decision diagrams",
	Long: `robdd loads a CNF instance and builds a reduced ordered binary
decision diagram for it, then reports its satisfying-assignment count and
node-table statistics.

Settings not passed as flags are read from environment variables prefixed
ROBDD_ and from a config file (YAML, TOML, or JSON; --config picks the
path, otherwise ./robdd.yaml is tried), in that order of precedence below
explicit flags.`,
	SilenceUsage: true,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./robdd.yaml)")
	rootCmd.PersistentFlags().String("order", "none", "static variable ordering: none, random, force")
	rootCmd.PersistentFlags().String("dvo", "none", "DVO schedule: none, once, converge")
	rootCmd.PersistentFlags().Int("cache-size", 0, "initial operation-cache size (0: engine default)")

	v.BindPFlag("order", rootCmd.PersistentFlags().Lookup("order"))
	v.BindPFlag("dvo", rootCmd.PersistentFlags().Lookup("dvo"))
	v.BindPFlag("cache_size", rootCmd.PersistentFlags().Lookup("cache-size"))
}

func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("robdd")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("ROBDD")
	v.AutomaticEnv()
	_ = v.ReadInConfig() // missing config file is fine; flags/env/defaults still apply
}
