package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	nvmelint "github.com/OpenMPDK/nvme-lint"
	"github.com/OpenMPDK/nvme-lint/config"
	"github.com/OpenMPDK/nvme-lint/logging"
	"github.com/OpenMPDK/nvme-lint/report"
)

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = mergeSettings(cfg, opts, cmd.Flags().Changed)

	if !isValidFormat(cfg.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, validFormats)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return err
		}
	} else {
		logPath = config.ExpandPath(logPath)
	}
	flush, err := logging.Setup(cfg.LogLevel, logPath)
	if err != nil {
		return err
	}
	defer flush()

	targets, err := config.ReadFigureList(cfg.Target)
	if err != nil {
		return err
	}
	ignores, err := config.ReadFigureList(cfg.Ignore)
	if err != nil {
		return err
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	if cfg.YAML != "" && len(files) > 1 {
		return fmt.Errorf("--yaml supports a single input file, %d matched", len(files))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{
		cfg:     cfg,
		targets: targets,
		ignores: ignores,
		useOCR:  opts.ocr,
		out:     cmd.OutOrStdout(),
	}
	for _, file := range files {
		if err := r.lintFile(ctx, file); err != nil {
			return err
		}
	}
	if opts.watch {
		return watchFiles(ctx, files, r.lintFile)
	}
	return nil
}

// runner lints files under one merged configuration. Watch mode reuses it
// for every re-lint.
type runner struct {
	cfg     config.Config
	targets []int
	ignores []int
	useOCR  bool
	out     io.Writer
}

// lintFile lints a single document and renders its findings. Findings are
// mirrored to the log file so they survive the terminal session.
func (r *runner) lintFile(ctx context.Context, file string) error {
	linter := nvmelint.Open(file).
		Targets(r.targets...).
		Ignore(r.ignores...).
		Workers(r.cfg.Workers)
	if r.cfg.YAML != "" {
		linter = linter.YAML(config.ExpandPath(r.cfg.YAML))
	}
	if r.useOCR {
		linter = linter.OCR()
	}

	result, err := linter.Run(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	ledger := logging.File("lint")
	for _, issue := range result.Issues {
		ledger.Warn(issue.String())
	}

	if r.cfg.Format == "json" {
		return report.RenderJSON(r.out, result.Issues)
	}
	return report.Render(r.out, result.Issues)
}

// expandArgs resolves the FILE arguments, which may be doublestar glob
// patterns, into a deduplicated list of existing files. A pattern that
// matches nothing is an error rather than a silent no-op.
func expandArgs(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(config.ExpandPath(arg), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("file pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	return files, nil
}
