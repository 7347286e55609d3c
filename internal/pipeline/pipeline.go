// Package pipeline runs the three report generators in sequence as child
// processes of the current binary, with a per-step timeout and output
// verification.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/energy-modelling-hub/water-value-database/internal/config"
)

// Step is one generator in the analysis pipeline.
type Step struct {
	Number      int
	Name        string
	Command     string
	Description string
	Outputs     func(cfg *config.Global) []string
}

// Steps is the full pipeline in execution order.
var Steps = []Step{
	{
		Number:      1,
		Name:        "Summary Tables",
		Command:     "tables",
		Description: "Generate summary statistics tables (classification, methods, regions, years, water values)",
		Outputs: func(cfg *config.Global) []string {
			var out []string
			for _, f := range []string{
				"table_1_classification.csv",
				"table_2_methods.csv",
				"table_3_regions.csv",
				"table_4_years.csv",
				"table_5_wv_summary.csv",
				"table_6_wv_purpose.csv",
			} {
				out = append(out, filepath.Join(cfg.TablesDir, f))
			}
			return out
		},
	},
	{
		Number:      2,
		Name:        "Completeness Heatmap",
		Command:     "completeness",
		Description: "Generate data completeness heatmap figure",
		Outputs: func(cfg *config.Global) []string {
			return []string{
				filepath.Join(cfg.FiguresDir, "fig_completeness_heatmap.png"),
				filepath.Join(cfg.FiguresDir, "fig_completeness_heatmap.pdf"),
			}
		},
	},
	{
		Number:      3,
		Name:        "Analytical Charts",
		Command:     "charts",
		Description: "Generate analytical figures (year distribution, geographic, datapoints by year, purpose and method heatmaps)",
		Outputs: func(cfg *config.Global) []string {
			var out []string
			for _, f := range []string{
				"fig_year_method_stacked.png",
				"fig_geographic_distribution.png",
				"fig_wv_datapoints_by_year.png",
				"fig_continent_purpose_heatmap.png",
				"fig_category_method_heatmap.png",
			} {
				out = append(out, filepath.Join(cfg.FiguresDir, f))
			}
			return out
		},
	},
}

// Runner executes pipeline steps and reports a summary.
type Runner struct {
	Config *config.Global
	Out    io.Writer

	// Exec runs one generator subcommand as a child process. Tests
	// substitute it.
	Exec func(ctx context.Context, command string) error
}

// New returns a Runner that re-invokes the current executable for each
// step.
func New(cfg *config.Global) *Runner {
	r := &Runner{Config: cfg, Out: os.Stdout}
	r.Exec = r.execSelf
	return r
}

func (r *Runner) printf(format string, a ...any) {
	fmt.Fprintf(r.Out, format+"\n", a...)
}

// Run executes the selected step, or every step when only is 0. A step
// failure halts the remaining steps only in a full run. The returned
// error is non-nil when any step failed.
func (r *Runner) Run(ctx context.Context, only int) error {
	r.printf("\n%s", strings.Repeat("═", 72))
	r.printf("  WATER VALUE DATABASE — ANALYSIS PIPELINE")
	r.printf("  Started: %s", time.Now().Format("2006-01-02 15:04:05"))
	r.printf("%s", strings.Repeat("═", 72))
	r.printf("")

	if err := r.checkPrerequisites(); err != nil {
		return err
	}

	toRun, err := SelectSteps(only)
	if err != nil {
		return err
	}

	totalStart := time.Now()
	results := map[int]bool{}
	for _, step := range toRun {
		ok := r.runStep(ctx, step)
		results[step.Number] = ok
		if !ok && only == 0 {
			r.printf("\n  ✗ Pipeline halted at step %d", step.Number)
			r.printf("    Fix the error and re-run.")
			break
		}
	}

	return r.summarize(results, time.Since(totalStart))
}

// SelectSteps resolves a --step argument to the steps to execute.
func SelectSteps(only int) ([]Step, error) {
	if only == 0 {
		return Steps, nil
	}
	for _, s := range Steps {
		if s.Number == only {
			return []Step{s}, nil
		}
	}
	return nil, fmt.Errorf("invalid step number %d: valid steps are 1-%d", only, len(Steps))
}

// checkPrerequisites verifies the SQLite store exists before any step
// runs.
func (r *Runner) checkPrerequisites() error {
	info, err := os.Stat(r.Config.DatabasePath)
	if err != nil {
		r.printf("  ✗ DATABASE NOT FOUND: %s", r.Config.DatabasePath)
		r.printf("")
		r.printf("    The analysis pipeline requires the SQLite database.")
		r.printf("    If missing, re-download from the repository or Zenodo archive.")
		return fmt.Errorf("database not found: %s", r.Config.DatabasePath)
	}
	r.printf("  ✓ Database found: %s (%.1f MB)",
		filepath.Base(r.Config.DatabasePath), float64(info.Size())/(1024*1024))
	return nil
}

// runStep executes one step and verifies its expected outputs. Missing
// outputs downgrade to a warning; the step still passes.
func (r *Runner) runStep(ctx context.Context, step Step) bool {
	r.printf("\n%s", strings.Repeat("─", 60))
	r.printf("  Step %d: %s", step.Number, step.Name)
	r.printf("  %s", step.Description)
	r.printf("%s\n", strings.Repeat("─", 60))

	stepCtx, cancel := context.WithTimeout(ctx, time.Duration(r.Config.StepTimeoutSec)*time.Second)
	defer cancel()

	start := time.Now()
	err := r.Exec(stepCtx, step.Command)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(stepCtx.Err(), context.DeadlineExceeded) {
			r.printf("\n  ✗ TIMEOUT: step exceeded %ds limit", r.Config.StepTimeoutSec)
		} else {
			r.printf("\n  ✗ FAILED: %v", err)
		}
		return false
	}

	missing := MissingOutputs(step, r.Config)
	if len(missing) > 0 {
		r.printf("\n  ⚠ MISSING OUTPUTS:")
		for _, path := range missing {
			r.printf("    %s", path)
		}
		r.printf("\n  ⚠ Step completed with warnings (%.1fs)", elapsed.Seconds())
		return true
	}

	r.printf("\n  ✓ Step %d completed successfully (%.1fs)", step.Number, elapsed.Seconds())
	r.printf("    All %d expected outputs verified.", len(step.Outputs(r.Config)))
	return true
}

// MissingOutputs returns the expected output paths of a step that do not
// exist on disk.
func MissingOutputs(step Step, cfg *config.Global) []string {
	var missing []string
	for _, path := range step.Outputs(cfg) {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

// summarize prints the colored pipeline summary and returns an error
// when any step failed.
func (r *Runner) summarize(results map[int]bool, total time.Duration) error {
	pass := color.New(color.FgGreen).Sprint("✓ PASS")
	fail := color.New(color.FgRed).Sprint("✗ FAIL")
	skip := color.New(color.FgYellow).Sprint("○ SKIP")

	r.printf("\n%s", strings.Repeat("═", 72))
	r.printf("  PIPELINE SUMMARY")
	r.printf("%s", strings.Repeat("═", 72))
	r.printf("")

	nPass, nFail := 0, 0
	for _, step := range Steps {
		ok, ran := results[step.Number]
		status := skip
		switch {
		case ran && ok:
			status = pass
			nPass++
		case ran:
			status = fail
			nFail++
		}
		r.printf("  %s  Step %d: %s", status, step.Number, step.Name)
	}
	nSkip := len(Steps) - len(results)

	r.printf("")
	r.printf("  Passed:  %d", nPass)
	r.printf("  Failed:  %d", nFail)
	r.printf("  Skipped: %d", nSkip)
	r.printf("  Total time: %.1fs", total.Seconds())
	r.printf("")

	switch {
	case nFail == 0 && nSkip == 0:
		r.printf("  ✓ ALL STEPS COMPLETED SUCCESSFULLY")
		r.printf("")
		r.printf("  Input:")
		r.printf("    Database:  %s", r.Config.DatabasePath)
		r.printf("")
		r.printf("  Generated outputs:")
		r.printf("    Tables:    %s/table_*.csv", r.Config.TablesDir)
		r.printf("    Figures:   %s/fig_*.png / .pdf", r.Config.FiguresDir)
	case nFail > 0:
		r.printf("  ✗ PIPELINE INCOMPLETE — fix errors and re-run")
	}

	r.printf("\n%s", strings.Repeat("═", 72))
	r.printf("  ANALYSIS PIPELINE COMPLETE")
	r.printf("%s\n", strings.Repeat("═", 72))

	if nFail > 0 {
		return fmt.Errorf("%d pipeline step(s) failed", nFail)
	}
	return nil
}

// execSelf re-invokes the current binary with the generator subcommand,
// forwarding the effective configuration as flags.
func (r *Runner) execSelf(ctx context.Context, command string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	cmd := exec.CommandContext(ctx, exe, command,
		"--database", r.Config.DatabasePath,
		"--tables-dir", r.Config.TablesDir,
		"--figures-dir", r.Config.FiguresDir,
	)
	cmd.Stdout = r.Out
	cmd.Stderr = r.Out
	return cmd.Run()
}
