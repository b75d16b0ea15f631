package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/aleister1102/sashunter/internal/logger"
	"github.com/aleister1102/sashunter/internal/reporter"
	"github.com/aleister1102/sashunter/internal/scanner"
	"github.com/aleister1102/sashunter/internal/secretscanner"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	configPath string
	queries    []string
	maxResults int
	outputDir  string
	formats    []string
	logFile    string
	logLevel   string
	strict     bool
	apiURL     string
}

func newScanCmd() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [query...]",
		Short: "Search GitHub code for SAS tokens and write a report",
		Long:  "Run each query against the GitHub code search API, extract and validate SAS token candidates from every matching file, and write a report. Without queries the configured or built-in defaults are used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML or JSON config file")
	f.StringArrayVarP(&opts.queries, "query", "q", nil, "code search query (repeatable)")
	f.IntVar(&opts.maxResults, "max-results", 0, "finding budget per query")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for report files")
	f.StringSliceVar(&opts.formats, "format", nil, "report formats: text, json, parquet (repeatable)")
	f.StringVar(&opts.logFile, "log-file", "", "log file path")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&opts.strict, "strict", false, "require sv and sig as real query parameters")
	f.StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL")
	return cmd
}

func runScan(cmd *cobra.Command, opts *scanOptions, args []string) error {
	cfg, err := config.LoadGlobalConfig(opts.configPath)
	if err != nil {
		return withExitCode(exitFatal, err)
	}
	applyScanFlags(cmd, opts, cfg)

	if err := config.ValidateConfig(cfg); err != nil {
		return withExitCode(exitFatal, err)
	}

	token, err := config.LoadCredential(cfg.GitHubConfig.TokenEnv)
	if err != nil {
		return withExitCode(exitMissingCredential, fmt.Errorf("please set the %s environment variable: %w", cfg.GitHubConfig.TokenEnv, err))
	}

	appLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return withExitCode(exitFatal, errorwrapper.WrapError(err, "could not initialize logger"))
	}
	defer appLogger.Close()
	zLogger := *appLogger.GetZerolog()

	queries := append(append([]string(nil), args...), opts.queries...)
	if len(queries) == 0 {
		queries = cfg.Queries()
	}

	s, err := scanner.NewFromConfig(cfg, token, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize scanner")
		return withExitCode(exitFatal, err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := s.ScanAndReport(ctx, queries)
	if err != nil {
		return withExitCode(exitFatal, err)
	}

	out := cmd.OutOrStdout()
	if err := reporter.PrintSummary(out, result.Summary, result.Findings); err != nil {
		zLogger.Warn().Err(err).Msg("Failed to print summary table")
	}

	fmt.Fprintf(out, "\nScan complete. Found %d potential SAS tokens.\n", len(result.Findings))
	for _, p := range result.ReportPaths {
		fmt.Fprintf(out, "Report: %s\n", p)
	}
	if logPath := appLogger.FilePath(); logPath != "" {
		fmt.Fprintf(out, "Log: %s\n", logPath)
	}
	return nil
}

// applyScanFlags overrides config values with flags the user actually set.
func applyScanFlags(cmd *cobra.Command, opts *scanOptions, cfg *config.GlobalConfig) {
	flags := cmd.Flags()
	if flags.Changed("max-results") {
		cfg.ScanConfig.MaxResultsPerQuery = opts.maxResults
	}
	if flags.Changed("output-dir") {
		cfg.ReporterConfig.OutputDir = opts.outputDir
	}
	if flags.Changed("format") {
		cfg.ReporterConfig.Formats = opts.formats
	}
	if flags.Changed("log-file") {
		cfg.LogConfig.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogConfig.LogLevel = opts.logLevel
	}
	if flags.Changed("strict") && opts.strict {
		cfg.ScanConfig.ValidationMode = string(secretscanner.ValidationModeStrict)
	}
	if flags.Changed("api-url") {
		cfg.GitHubConfig.APIBaseURL = opts.apiURL
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
