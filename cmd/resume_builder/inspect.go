package main

import (
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf-file>",
	Short: "Report the page count and text of a PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectText bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectText, "text", true, "Extract the text layer")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	info, err := pdf.Inspect(args[0], inspectText)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintInspection(args[0], info.Pages, info.Text)
	return nil
}
