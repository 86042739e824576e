// Package app provides the command line interface of the descriptor registry server.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/stacklok/descriptor-registry-server/internal/versions"
)

// NewRootCmd creates a new root command for the descriptor registry.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "descriptor-registry",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Descriptor registry server",
		Long: `Descriptor registry server stores shell descriptors, the submodel descriptors nested
in them and standalone submodel descriptors, and serves them over a REST API.`,
		Run: func(cmd *cobra.Command, _ []string) {
			// If no subcommand is provided, print help
			if err := cmd.Help(); err != nil {
				slog.Error("Error displaying help", "error", err)
			}
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMigrateCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			return printVersion(cmd.OutOrStdout(), format, versions.GetVersionInfo())
		},
	}
	cmd.Flags().String("format", "", "Output format (json)")
	return cmd
}

func printVersion(w io.Writer, format string, info versions.VersionInfo) error {
	switch format {
	case "json":
		output, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format version info as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	case "", "table":
		table := tablewriter.NewWriter(w)
		table.Header("Field", "Value")
		for _, row := range [][]string{
			{"Version", info.Version},
			{"Commit", info.Commit},
			{"Built", info.BuildDate},
			{"Go", info.GoVersion},
			{"Platform", info.Platform},
		} {
			if err := table.Append(row); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
