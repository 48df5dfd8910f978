/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for lwc-resolve.
package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lukethacoder/lwc-module-resolver/fs"
	"github.com/lukethacoder/lwc-module-resolver/internal/cliopts"
	"github.com/lukethacoder/lwc-module-resolver/resolver"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List every resolvable module specifier",
	Long: `List every module specifier the configuration of the nearest package above
--from can resolve: alias names, components found in dir records, and the
specifiers exposed by npm records.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("from", ".", "Directory to start the configuration search from")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
	Cmd.Flags().String("type", "", "Filter by entry type (alias, dir)")
}

func run(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	format, _ := cmd.Flags().GetString("format")
	typeFilter, _ := cmd.Flags().GetString("type")

	opts, err := cliopts.ResolverOptions(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	entries, err := resolver.List(from, opts)
	if err != nil {
		return err
	}

	entries = filterEntries(entries, resolver.RegistryType(typeFilter))

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), entries)
	case "table":
		return outputTable(cmd.OutOrStdout(), entries)
	default:
		return fmt.Errorf("unsupported format %q (want table or json)", format)
	}
}

// filterEntries keeps entries of type typ. An empty typ keeps everything.
func filterEntries(entries []resolver.RegistryEntry, typ resolver.RegistryType) []resolver.RegistryEntry {
	if typ == "" {
		return entries
	}
	filtered := make([]resolver.RegistryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Type == typ {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func outputTable(w io.Writer, entries []resolver.RegistryEntry) error {
	caser := cases.Title(language.English)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-30s %-6s %s\n", e.Specifier, caser.String(string(e.Type)), e.Entry); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []resolver.RegistryEntry) error {
	if entries == nil {
		entries = []resolver.RegistryEntry{}
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
