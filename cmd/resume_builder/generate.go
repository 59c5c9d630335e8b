package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render resume data to a PDF",
	Long:  "Validates a resume JSON file, renders it with the selected template and writes the PDF. Template options may be overridden per run.",
	RunE:  runGenerate,
}

var (
	generateDataFile     string
	generateTemplate     string
	generateOutputFile   string
	generateFormat       string
	generatePrimaryColor string
	generateFont         string
	generateMargin       float64
	generateOptions      string
)

func init() {
	generateCmd.Flags().StringVarP(&generateDataFile, "data", "d", "", "Path to resume data JSON file (required)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template id (default from config or registry)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output PDF (default <output_dir>/<data name>.pdf)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", generator.FormatPDF, "Output format")
	generateCmd.Flags().StringVar(&generatePrimaryColor, "primary-color", "", "Primary color override, e.g. #1a66b3")
	generateCmd.Flags().StringVar(&generateFont, "font", "", "Body font family override, e.g. Times-Roman")
	generateCmd.Flags().Float64Var(&generateMargin, "margin", 0, "Page margin override in inches, applied to all sides")
	generateCmd.Flags().StringVar(&generateOptions, "options", "", "Template overrides as a JSON object")

	_ = generateCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, _, gen, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(generateDataFile)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	overrides, err := generateOverrides()
	if err != nil {
		return err
	}

	out := generateOutputFile
	if out == "" {
		out = outputPathFor(cfg.OutputDir, generateDataFile)
	}

	start := time.Now()
	res, err := gen.Generate(cmd.Context(), generator.Request{
		TemplateID: generateTemplate,
		Data:       data,
		Options:    overrides,
		OutputPath: out,
		Format:     generateFormat,
	})
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if err != nil {
		printValidationError(printer, err)
		return err
	}

	printer.PrintGeneration(observability.Generation{
		TemplateID: res.TemplateID,
		Path:       res.Path,
		Bytes:      len(res.Buffer),
		Pages:      res.Pages,
		Duration:   time.Since(start),
		Degraded:   res.Degraded,
		Cause:      res.Cause,
	})
	return nil
}

// generateOverrides merges --options with the shorthand override flags; the flags win
func generateOverrides() (map[string]any, error) {
	overrides := map[string]any{}
	if generateOptions != "" {
		if err := json.Unmarshal([]byte(generateOptions), &overrides); err != nil {
			return nil, fmt.Errorf("invalid --options JSON: %w", err)
		}
	}

	if generatePrimaryColor != "" {
		overrides = templates.DeepMerge(overrides, map[string]any{
			"colors": map[string]any{"primary": generatePrimaryColor},
		})
	}
	if generateFont != "" {
		overrides = templates.DeepMerge(overrides, map[string]any{
			"fonts": map[string]any{"normal": map[string]any{"family": generateFont}},
		})
	}
	if generateMargin > 0 {
		overrides = templates.DeepMerge(overrides, map[string]any{
			"margins": map[string]any{
				"left":   generateMargin,
				"right":  generateMargin,
				"top":    generateMargin,
				"bottom": generateMargin,
			},
		})
	}

	if len(overrides) == 0 {
		return nil, nil
	}
	return overrides, nil
}
