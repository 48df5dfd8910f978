/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for lwc-resolve.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lukethacoder/lwc-module-resolver/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the lwc-resolve version with the commit, build time and Go toolchain
it was built from. --short prints the version alone.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	Cmd.Flags().Bool("short", false, "Print only the version")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	short, _ := cmd.Flags().GetBool("short")

	if short {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		return err
	}
	return writeInfo(cmd.OutOrStdout(), version.Info(), format)
}

func writeInfo(w io.Writer, info version.BuildInfo, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "text":
		rows := [][2]string{{"version", info.Version}}
		if info.GitCommit != "" {
			commit := info.GitCommit
			if info.Dirty {
				commit += " (dirty)"
			}
			rows = append(rows, [2]string{"commit", commit})
		}
		if info.BuildTime != "" {
			rows = append(rows, [2]string{"built", info.BuildTime})
		}
		rows = append(rows, [2]string{"go", info.GoVersion})

		if _, err := fmt.Fprintln(w, "lwc-resolve"); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "  %-8s %s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text or json)", format)
	}
}
