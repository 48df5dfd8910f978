/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for lwc-resolve.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lukethacoder/lwc-module-resolver/cmd/list"
	"github.com/lukethacoder/lwc-module-resolver/cmd/resolve"
	"github.com/lukethacoder/lwc-module-resolver/cmd/version"
	"github.com/lukethacoder/lwc-module-resolver/internal/cliopts"
	buildinfo "github.com/lukethacoder/lwc-module-resolver/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lwc-resolve",
	Short: "Resolve Lightning Web Component module specifiers",
	Long: `lwc-resolve maps LWC module specifiers such as "c/card" to the files that
implement them, following the alias, dir and npm module records declared in
package.json and lwc.config.json.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(buildinfo.Full()),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML or JSON file with module records that override the project configuration")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log resolution diagnostics")

	_ = viper.BindPFlag(cliopts.KeyConfig, rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(cliopts.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix(cliopts.EnvPrefix)
	viper.AutomaticEnv()

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
