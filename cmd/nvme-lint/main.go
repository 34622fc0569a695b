// Command nvme-lint validates the tables of NVMe specification documents.
// It extracts every "Figure N:" table from the given PDF files through the
// Poppler tools, checks captions, headings and bit/byte/value layouts, and
// prints the findings. Table content can optionally be dumped to YAML.
//
// Usage:
//
//	nvme-lint [flags] FILE...
//
// FILE arguments may be glob patterns such as specs/**/*.pdf. Findings do
// not affect the exit code; a non-zero exit signals an operational failure.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenMPDK/nvme-lint/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds the raw flag values before they are merged with the
// configuration file.
type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
	ignorePath string
	targetPath string
	yamlPath   string
	workers    int
	format     string
	watch      bool
	ocr        bool
}

// validFormats lists the allowed findings formats.
var validFormats = []string{"text", "json"}

// newRootCommand creates the nvme-lint command.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nvme-lint [flags] FILE...",
		Short: "Validate tables in NVMe specification documents",
		Long: `Validate tables in NVMe specification documents.

nvme-lint runs the Poppler tools over each PDF, reconstructs every
"Figure N:" table and reports malformed captions, headings and
bit/byte/value layouts. Findings go to stdout and to the log file.

Example:
  nvme-lint nvme-base-2.0c.pdf
  nvme-lint -t figures.txt -y tables.yaml nvme-base-2.0c.pdf
  nvme-lint --watch drafts/**/*.pdf`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/nvme-lint/config.toml)")
	flags.StringVarP(&opts.logLevel, "log-level", "l", defaults.LogLevel, "log level: debug, info, warning, error or critical")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default $XDG_DATA_HOME/nvme-lint/nvme-lint.log)")
	flags.StringVarP(&opts.ignorePath, "ignore", "i", "", "file with figure numbers to skip, one per line")
	flags.StringVarP(&opts.targetPath, "target", "t", "", "file with the only figure numbers to validate, one per line")
	flags.StringVarP(&opts.yamlPath, "yaml", "y", "", "write the validated table content to this YAML file")
	flags.IntVarP(&opts.workers, "workers", "j", defaults.Workers, "number of pages processed concurrently")
	flags.StringVar(&opts.format, "format", defaults.Format, "findings format: text or json")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "keep running and lint files again when they change")
	flags.BoolVar(&opts.ocr, "ocr", false, "recover captions on image-only pages through OCR (needs an ocr-tagged build)")

	return cmd
}

// mergeSettings folds flag values over the configuration file. A flag only
// applies when it was given on the command line, so file settings survive
// untouched flag defaults.
func mergeSettings(cfg config.Config, opts *rootOptions, changed func(string) bool) config.Config {
	if changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if changed("ignore") {
		cfg.Ignore = opts.ignorePath
	}
	if changed("target") {
		cfg.Target = opts.targetPath
	}
	if changed("yaml") {
		cfg.YAML = opts.yamlPath
	}
	if changed("workers") {
		cfg.Workers = opts.workers
	}
	if changed("format") {
		cfg.Format = opts.format
	}
	return cfg
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
