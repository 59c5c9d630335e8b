package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch <data-file>...",
	Short: "Render many resume data files in parallel",
	Long:  "Renders every data file with the same template, writing <out-dir>/<name>.pdf for each. A failing file does not stop the others.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchTemplate string
	batchOutDir   string
	batchParallel int
)

func init() {
	batchCmd.Flags().StringVarP(&batchTemplate, "template", "t", "", "Template id (default from config or registry)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Output directory (default output_dir from config)")
	batchCmd.Flags().IntVarP(&batchParallel, "parallel", "p", 4, "Maximum documents rendered at once")
	rootCmd.AddCommand(batchCmd)
}

type batchOutcome struct {
	result *generator.Result
	took   time.Duration
	err    error
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, logger, gen, err := setup(cmd)
	if err != nil {
		return err
	}
	if batchParallel < 1 {
		return fmt.Errorf("--parallel must be at least 1")
	}

	outDir := batchOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	outcomes := make([]batchOutcome, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchParallel)

	for i, path := range args {
		g.Go(func() error {
			start := time.Now()
			data, err := os.ReadFile(path)
			if err != nil {
				outcomes[i] = batchOutcome{err: fmt.Errorf("failed to read data file: %w", err)}
				return nil
			}

			res, err := gen.Generate(ctx, generator.Request{
				TemplateID: batchTemplate,
				Data:       data,
				OutputPath: outputPathFor(outDir, path),
			})
			outcomes[i] = batchOutcome{result: res, took: time.Since(start), err: err}
			return nil
		})
	}
	_ = g.Wait()

	printer := observability.NewPrinter(cmd.OutOrStdout())
	failed := 0
	for i, o := range outcomes {
		if o.err != nil {
			failed++
			logger.Error("batch item failed", "file", args[i], "err", o.err)
			continue
		}
		printer.PrintGeneration(observability.Generation{
			TemplateID: o.result.TemplateID,
			Path:       o.result.Path,
			Bytes:      len(o.result.Buffer),
			Pages:      o.result.Pages,
			Duration:   o.took,
			Degraded:   o.result.Degraded,
			Cause:      o.result.Cause,
		})
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}
