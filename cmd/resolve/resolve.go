/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for lwc-resolve.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lukethacoder/lwc-module-resolver/fs"
	"github.com/lukethacoder/lwc-module-resolver/internal/cliopts"
	"github.com/lukethacoder/lwc-module-resolver/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier>",
	Short: "Resolve a module specifier to its entry file",
	Long: `Resolve an LWC module specifier (e.g. c/card) to its entry file, using the
lwc.config.json or package.json "lwc" configuration of the nearest package above --from.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("from", ".", "Directory of the importing file")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	format, _ := cmd.Flags().GetString("format")

	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q (want text or json)", format)
	}

	opts, err := cliopts.ResolverOptions(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	entry, err := resolver.ResolveModule(args[0], from, opts)
	if err != nil {
		return err
	}

	return writeEntry(cmd.OutOrStdout(), entry, format)
}

func writeEntry(w io.Writer, entry *resolver.RegistryEntry, format string) error {
	if format == "json" {
		out, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling entry: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	_, err := fmt.Fprintf(w, "%-10s %s\n%-10s %s\n%-10s %s\n%-10s %s\n",
		"specifier", entry.Specifier,
		"entry", entry.Entry,
		"type", entry.Type,
		"scope", entry.Scope,
	)
	return err
}
