package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trisolve/cmd/trisolve/ui"
	"trisolve/internal/batch"
	"trisolve/internal/logging"
)

var (
	batchConcurrency int
	batchFormat      string
	batchPrecision   int
	batchWatch       bool
)

// batchCmd solves every triangle in a job file
var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Solve all triangles in a YAML job file",
	Long: `Solves every job in a YAML job file concurrently and prints a report.

Job file layout:

  jobs:
    - name: roof truss
      schema: SWS
      a: 3
      b: 4
      gamma: 90

With --watch the file is solved again after every save until interrupted.
Without it the command fails when any job fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "j", 0, "Jobs solved in parallel (default from config)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Output format: text, json, yaml, markdown (default from config)")
	batchCmd.Flags().IntVarP(&batchPrecision, "precision", "p", -1, "Decimals for side lengths (default from config)")
	batchCmd.Flags().BoolVarP(&batchWatch, "watch", "w", false, "Re-run whenever the job file changes")
}

func runBatch(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer(batchFormat, batchPrecision)
	if err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = currentConfig().Batch.Concurrency
	}
	runner := batch.NewRunner(concurrency)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if batchWatch {
		return watchBatch(ctx, out, args[0], runner, renderer)
	}

	jobs, err := batch.Load(args[0])
	if err != nil {
		return err
	}
	report, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}
	if err := renderer.Report(out, report); err != nil {
		return err
	}
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d jobs failed", n, len(report.Outcomes))
	}
	return nil
}

func watchBatch(ctx context.Context, out io.Writer, path string, runner *batch.Runner, renderer ui.Renderer) error {
	log := logging.Get(logging.CategoryWatch)
	w, err := batch.NewWatcher(path, runner, currentConfig().GetDebounce(), func(report batch.Report, err error) {
		if err != nil {
			fmt.Fprintln(out, renderer.Styles.Error.Render("✗ "+err.Error()))
			return
		}
		if err := renderer.Report(out, report); err != nil {
			log.Error("Failed to render report", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	fmt.Fprintln(out, renderer.Styles.Muted.Render("watching "+path+" (ctrl+c to stop)"))
	return w.Watch(ctx)
}

// cmdContext returns the command's context, which is nil when a command
// function is called directly.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
