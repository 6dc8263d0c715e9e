package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prixlens/prixlens/internal/config"
	"github.com/prixlens/prixlens/internal/output"
)

var statusOutput string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the suggestion server's status",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(statusOutput)
		if err != nil {
			return err
		}
		if format == output.FormatMarkdown {
			return fmt.Errorf("unsupported output format: %s", format)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		service := buildService(cfg, nil)

		status, err := service.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch status: %w", err)
		}

		if format == output.FormatJSON {
			payload, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(payload))
			return nil
		}

		fmt.Printf("Status:           %s\n", status.Status)
		fmt.Printf("Current library:  %s\n", valueOrDash(status.CurrentLibrary))
		fmt.Printf("Available:        %s\n", valueOrDash(strings.Join(status.AvailableLibraries, ", ")))
		fmt.Printf("Cached:           %s\n", valueOrDash(strings.Join(status.CachedLibraries, ", ")))
		fmt.Printf("Dictionary terms: %d\n", status.DictionaryEntries)
		return nil
	},
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusOutput, "output", "table", "Output format: table, json")
}
