package main

import (
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [template-id]",
	Short: "List templates or show one template's metadata",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

var templatesJSON bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print metadata as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	if len(args) == 0 {
		entries := reg.List()
		if templatesJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		printer.PrintTemplates(entries)
		return nil
	}

	entry, err := reg.Get(args[0])
	if err != nil {
		return err
	}
	if templatesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}
	printer.PrintTemplate(entry)
	return nil
}
