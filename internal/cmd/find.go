package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/fatfilefinder/internal/action"
	"github.com/harrison/fatfilefinder/internal/config"
	"github.com/harrison/fatfilefinder/internal/filelock"
	"github.com/harrison/fatfilefinder/internal/logger"
	"github.com/harrison/fatfilefinder/internal/prompt"
	"github.com/harrison/fatfilefinder/internal/sizespec"
	"github.com/harrison/fatfilefinder/internal/walker"
)

// runFind implements the root command: scan, print, then offer the actions.
// Setup problems (bad size, bad pattern, bad config) are returned as errors.
// Per-file failures during the scan or the actions are logged and the run
// still succeeds.
func runFind(cmd *cobra.Command, opts *findOptions) error {
	out := cmd.OutOrStdout()

	cfg, cfgSource, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	variant, err := cfg.SizeVariant()
	if err != nil {
		return err
	}

	minSize, err := sizespec.Parse(opts.size, variant)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", opts.size, err)
	}

	criteria, err := walker.NewCriteria(opts.directory, minSize, walker.NormalizeExtensions(opts.extensions), opts.pattern)
	if err != nil {
		return err
	}

	var fileLog *logger.FileLogger
	if cfg.LogDir != "" {
		fileLog, err = logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
	}

	log := newRunLogger(
		out,
		logger.NewConsoleLogger(out, cfg.LogLevel),
		logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
		fileLog,
	)

	log.LogDebug("Configuration: " + cfgSource)
	if fileLog != nil {
		log.LogDebug(fmt.Sprintf("Run log %s (run %s)", fileLog.Path(), fileLog.RunID()))
	}

	mode := walker.ModeAll
	if opts.first {
		mode = walker.ModeFirst
	}

	log.LogDebug(fmt.Sprintf("Scanning %s (size > %d bytes, extensions %v, pattern %q, mode %s)",
		criteria.Root(), criteria.MinSize(), criteria.Extensions(), criteria.Pattern(), mode))

	matches := walker.Find(criteria, mode, log)
	if len(matches) == 0 {
		log.status(nil, "No files found.")
		return nil
	}

	printMatches(out, matches, log)

	p := prompt.New(cmd.InOrStdin(), out)

	if err := archiveStep(p, matches, log); err != nil {
		return err
	}

	return relocateStep(p, matches, cfg.HoldingDir, log)
}

// loadConfig reads the config file and applies explicitly set flags. It also
// returns a description of where the settings came from. Without --config and
// without a resolvable home directory the defaults are used.
func loadConfig(cmd *cobra.Command, opts *findOptions) (*config.Config, string, error) {
	var (
		cfg    *config.Config
		source string
		err    error
	)

	if opts.configPath != "" {
		source = opts.configPath
		cfg, err = config.LoadConfig(opts.configPath)
	} else if home, homeErr := config.GetHome(); homeErr != nil {
		source = fmt.Sprintf("defaults (%v)", homeErr)
		cfg = config.DefaultConfig()
	} else {
		source = filepath.Join(home, config.ConfigFileName)
		cfg, err = config.LoadConfigFromDir(home)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config from %s: %w", source, err)
	}

	// Build flag pointers for merge (only non-default values)
	var logLevelPtr, logDirPtr, sizeFormatPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevelPtr = &opts.logLevel
	}
	if opts.verbose {
		debug := "debug"
		logLevelPtr = &debug
	}
	if cmd.Flags().Changed("log-dir") {
		logDirPtr = &opts.logDir
	}
	if cmd.Flags().Changed("size-format") {
		sizeFormatPtr = &opts.sizeFormat
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr, sizeFormatPtr)

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, source, nil
}

// printMatches writes one "<path> - <N> bytes" line per match plus a summary.
func printMatches(out io.Writer, matches []walker.MatchedFile, log *runLogger) {
	var total int64
	for _, m := range matches {
		fmt.Fprintf(out, "%s - %d bytes\n", m.Path, m.Size)
		total += m.Size
	}

	fileLabel := "file"
	if len(matches) != 1 {
		fileLabel = "files"
	}
	fmt.Fprintln(out)
	log.status(color.New(color.Bold), "Found %d %s, %s in total.", len(matches), fileLabel, sizespec.Format(total))
}

// archiveStep asks for confirmation and a destination, then writes the zip.
// The archiver logs every failure itself.
func archiveStep(p *prompt.Prompter, matches []walker.MatchedFile, log *runLogger) error {
	ok, err := p.Confirm("Archive matched files?")
	if err != nil {
		return err
	}
	if !ok {
		log.status(nil, "Skipping archive.")
		return nil
	}

	dest, err := p.ReadLine("Archive destination path: ")
	if err != nil {
		return err
	}
	if dest == "" {
		log.status(nil, "No destination given, skipping archive.")
		return nil
	}

	archiver := action.NewArchiver(log)
	archiver.Progress = func(done, total int) {
		log.progress("Archiving", done, total)
	}

	result, err := archiver.Archive(matches, dest)
	switch {
	case result == nil:
		log.LogError(err.Error())
		log.status(color.New(color.FgRed), "Archive failed.")
	case errors.Is(err, action.ErrNotFinalised):
		log.status(color.New(color.FgRed), "Archive %s could not be finalised and is not usable.", result.Path)
	case err != nil:
		log.status(color.New(color.FgYellow), "Archive %s is incomplete: %d of %d files added.",
			result.Path, len(result.Entries), len(matches))
	default:
		log.status(color.New(color.FgGreen), "Archived %d files to %s.", len(result.Entries), result.Path)
	}

	return nil
}

// relocateStep asks for confirmation, then moves the matches into the holding
// directory, reporting each move as it happens.
func relocateStep(p *prompt.Prompter, matches []walker.MatchedFile, holdingDir string, log *runLogger) error {
	relocator := action.NewRelocator(holdingDir, log)
	relocator.OnMove = func(m action.Move) {
		log.status(nil, "Moved %s -> %s", m.From, m.To)
	}

	ok, err := p.Confirm(fmt.Sprintf("Move matched files to %s?", relocator.Dir()))
	if err != nil {
		return err
	}
	if !ok {
		log.status(nil, "Skipping relocation.")
		return nil
	}

	result, err := relocator.Relocate(matches)
	switch {
	case result == nil && errors.Is(err, filelock.ErrBusy):
		log.LogError(err.Error())
		log.status(color.New(color.FgRed), "Holding directory %s is in use by another run, nothing moved.", relocator.Dir())
	case result == nil:
		log.LogError(err.Error())
		log.status(color.New(color.FgRed), "Relocation failed.")
	case err != nil:
		log.status(color.New(color.FgYellow), "Relocated %d of %d files to %s.",
			len(result.Moved), len(matches), result.HoldingDir)
	default:
		log.status(color.New(color.FgGreen), "Relocated %d files to %s.", len(result.Moved), result.HoldingDir)
	}

	return nil
}
