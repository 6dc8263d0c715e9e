package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prixlens/prixlens/internal/config"
	"github.com/prixlens/prixlens/internal/output"
)

var librariesOutput string

var librariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List price libraries loaded on the suggestion server",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(librariesOutput)
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

		list, err := service.Libraries(cmd.Context())
		if err != nil {
			return fmt.Errorf("list libraries: %w", err)
		}

		if format == output.FormatJSON {
			payload, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(payload))
			return nil
		}

		if len(list.Files) == 0 {
			fmt.Println("No libraries loaded.")
			return nil
		}
		for _, name := range list.Files {
			fmt.Println(name)
		}
		fmt.Printf("%d libraries\n", list.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(librariesCmd)

	librariesCmd.Flags().StringVar(&librariesOutput, "output", "table", "Output format: table, json")
}
