package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [template-id]",
	Short: "Render a template with sample data",
	Long:  "Renders the built-in sample resume, or --data when given, so a template can be inspected without real data.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

var (
	previewDataFile   string
	previewOutputFile string
)

func init() {
	previewCmd.Flags().StringVarP(&previewDataFile, "data", "d", "", "Path to resume data JSON file (default built-in sample)")
	previewCmd.Flags().StringVarP(&previewOutputFile, "out", "o", "", "Path to output PDF (default <output_dir>/preview-<template>.pdf)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, _, gen, err := setup(cmd)
	if err != nil {
		return err
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	var sample any
	if previewDataFile != "" {
		data, err := os.ReadFile(previewDataFile)
		if err != nil {
			return fmt.Errorf("failed to read data file: %w", err)
		}
		sample = data
	}

	start := time.Now()
	res, err := gen.Preview(cmd.Context(), id, sample)
	if err != nil {
		printValidationError(observability.NewPrinter(cmd.OutOrStdout()), err)
		return err
	}

	out := previewOutputFile
	if out == "" {
		out = filepath.Join(cfg.OutputDir, "preview-"+res.TemplateID+".pdf")
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, res.Buffer, 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintGeneration(observability.Generation{
		TemplateID: res.TemplateID,
		Path:       out,
		Bytes:      len(res.Buffer),
		Pages:      res.Pages,
		Duration:   time.Since(start),
		Degraded:   res.Degraded,
		Cause:      res.Cause,
	})
	return nil
}
