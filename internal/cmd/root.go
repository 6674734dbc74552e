package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// findOptions holds the raw flag values for one invocation
type findOptions struct {
	directory  string
	size       string
	extensions string
	pattern    string
	first      bool
	sizeFormat string
	configPath string
	logLevel   string
	logDir     string
	verbose    bool
}

// NewRootCommand creates and returns the root cobra command for fatfilefinder
func NewRootCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "fatfilefinder",
		Short: "Find large files and archive or relocate them",
		Long: `fatfilefinder scans a directory tree for files larger than a size
threshold, optionally narrowed by extension and filename pattern.

Every match is printed as "<path> - <N> bytes". You are then asked whether to
pack the matches into a zip archive and whether to move them into the holding
directory (<system temp>/FatFileFinder). Only an answer of "y" proceeds.

Configuration is loaded from $FATFILEFINDER_HOME/config.yaml (default
~/.fatfilefinder/config.yaml) if present. CLI flags override the file.

Examples:
  # Files over 100 MB anywhere under /var
  fatfilefinder -d /var -s 100MB

  # Log and archive files over 10 MB
  fatfilefinder -d ~/projects -s 10MB -e log,zip,gz

  # Files whose name starts with "core." and is over 1 GB, stop at the first
  fatfilefinder -d / -s 1GB -p '^core\.' --first

  # Plain byte count only
  fatfilefinder -d . -s 4096 --size-format plain`,
		Version: Version,
		Args:    cobra.NoArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.directory, "directory", "d", "", "Root directory to scan (required)")
	flags.StringVarP(&opts.size, "size", "s", "", "Minimum file size, exclusive (e.g. 2048, 10KB, 5MB, 1GB) (required)")
	flags.StringVarP(&opts.extensions, "extensions", "e", "", "Comma-separated extensions to include (e.g. log,.zip); blank = any")
	flags.StringVarP(&opts.pattern, "pattern", "p", "", "Regular expression matched against file names; blank = any")
	flags.BoolVar(&opts.first, "first", false, "Stop after the first matching file")
	flags.StringVar(&opts.sizeFormat, "size-format", "", "How --size is parsed: unit or plain (default from config: unit)")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: $FATFILEFINDER_HOME/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (default from config: info)")
	flags.StringVar(&opts.logDir, "log-dir", "", "Directory for per-run log files (default: disabled)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Shorthand for --log-level debug")

	_ = cmd.MarkFlagRequired("directory")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}
