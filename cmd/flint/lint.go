package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/check"
	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/driver"
	"flint/internal/observ"
	"flint/internal/source"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [path]",
	Short: "Lint a C/C++ file or directory tree",
	Long:  `Lint runs every enabled check over the given file, or over all C/C++ files under the given directory. With no argument it lints the current directory`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lintCmd.Flags().String("ui", "auto", "interactive progress for directory runs (auto|on|off)")
	lintCmd.Flags().String("config", "", "path to a .flint.toml (default: nearest manifest above the target)")
	lintCmd.Flags().Bool("no-cache", false, "disable the result cache")
	lintCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 = all CPUs)")
}

func runLint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, target)
	if err != nil {
		return err
	}
	if err := validateDisabled(cfg); err != nil {
		return err
	}

	opts, err := lintOptions(cmd, cfg)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		results []driver.LintResult
	)
	if info.IsDir() {
		interactive := format == "pretty" && shouldUseTUI(mode)
		if interactive {
			fileSet, results, err = runLintDirWithUI(cmd.Context(), "lint "+target, target, opts)
		} else {
			fileSet, results, err = driver.LintDir(cmd.Context(), target, opts)
		}
		if err != nil {
			return err
		}
	} else {
		fileSet = source.NewFileSet()
		res, err := driver.LintFile(cmd.Context(), fileSet, target, opts)
		if err != nil {
			return err
		}
		results = []driver.LintResult{res}
	}

	merged := driver.MergeBags(results)
	if err := emitLint(cmd, merged, fileSet, results, format); err != nil {
		return err
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings && opts.Timer != nil {
		fmt.Fprint(os.Stderr, opts.Timer.Summary())
	}

	if merged.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// loadConfig resolves the manifest: an explicit --config path wins, otherwise
// the nearest .flint.toml above the target, otherwise defaults.
func loadConfig(cmd *cobra.Command, target string) (config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}
	startDir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		startDir = "."
	}
	cfg, _, err := config.LoadFromDir(startDir)
	return cfg, err
}

func validateDisabled(cfg config.Config) error {
	for _, name := range cfg.Disabled {
		if _, ok := check.Lookup(name); !ok {
			return fmt.Errorf("disabled %q: %w", name, config.ErrUnknownCheck)
		}
	}
	return nil
}

func lintOptions(cmd *cobra.Command, cfg config.Config) (driver.Options, error) {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	jobs, _ := cmd.Flags().GetInt("jobs")

	opts := driver.Options{
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err := driver.OpenDiskCache("flint")
		if err != nil {
			return opts, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		opts.Timer = observ.NewTimer()
	}
	return opts, nil
}

func emitLint(cmd *cobra.Command, merged *diag.Bag, fileSet *source.FileSet, results []driver.LintResult, format string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	if format == "json" {
		return diagfmt.JSON(os.Stdout, merged, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
		})
	}

	diagfmt.Pretty(os.Stdout, merged, fileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stdout),
		Context:   2,
		ShowNotes: true,
	})
	if !quiet {
		cached := 0
		for _, r := range results {
			if r.Cached {
				cached++
			}
		}
		fmt.Printf("%d findings in %d files (%d cached)\n", driver.TotalFindings(results), len(results), cached)
	}
	return nil
}

var cacheCmd = &cobra.Command{
	Use:   "cache drop",
	Short: "Drop the lint result cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "drop" {
			return fmt.Errorf("unknown cache action: %s", args[0])
		}
		cache, err := driver.OpenDiskCache("flint")
		if err != nil {
			return err
		}
		return cache.DropAll()
	},
}
