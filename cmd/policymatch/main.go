package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yashubustudio/policymatch/categorizer"
	"yashubustudio/policymatch/internal/logging"
)

type runOptions struct {
	referencePath string
	motionsPath   string
	codesPath     string
	outputPath    string
	format        string
	topK          int
	workers       int
	summary       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "policymatch: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "policymatch",
		Short:         "Match motion sentences to CMP policy codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json/config.yaml (default: ./config.json)")
	root.AddCommand(newRunCommand(&configPath), newConfigCommand())
	return root
}

func newRunCommand(configPath *string) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Match annotated motions against a manifesto corpus and score agreement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := categorizer.LoadConfig(strings.TrimSpace(*configPath))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyFlags(cmd, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(cmd.Context(), cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.summary)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.referencePath, "references", "", "Directory or CSV file of coded manifesto sentences")
	f.StringVar(&opts.motionsPath, "motions", "", "CSV file of annotated motions")
	f.StringVar(&opts.codesPath, "codes", "", "CSV file of code names (default: built-in CMP scheme)")
	f.StringVar(&opts.outputPath, "output", "", "File to write the report to (default: stdout)")
	f.StringVar(&opts.format, "format", "", "Report format: json, yaml or csv")
	f.IntVar(&opts.topK, "top-k", 0, "Candidates kept per sentence")
	f.IntVar(&opts.workers, "workers", 0, "Motions ranked in parallel")
	f.BoolVar(&opts.summary, "summary", true, "Print the agreement summary to stderr")
	return cmd
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = strings.TrimSpace(args[0])
			}
			var cfg categorizer.Config
			cfg.ApplyDefaults()
			if err := categorizer.SaveConfig(path, cfg); err != nil {
				return err
			}
			if path == "" {
				path = "config.json"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return cmd
}

func applyFlags(cmd *cobra.Command, cfg *categorizer.Config, opts runOptions) {
	f := cmd.Flags()
	if f.Changed("references") {
		cfg.ReferencePath = strings.TrimSpace(opts.referencePath)
	}
	if f.Changed("motions") {
		cfg.MotionsPath = strings.TrimSpace(opts.motionsPath)
	}
	if f.Changed("codes") {
		cfg.CodesPath = strings.TrimSpace(opts.codesPath)
	}
	if f.Changed("output") {
		cfg.OutputPath = strings.TrimSpace(opts.outputPath)
	}
	if f.Changed("format") {
		cfg.Format = categorizer.Format(strings.TrimSpace(opts.format))
	}
	if f.Changed("top-k") {
		cfg.TopK = opts.topK
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	cfg.ApplyDefaults()
}

func run(ctx context.Context, cfg categorizer.Config, logger *zap.Logger, stdout, stderr io.Writer, summary bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.ReferencePath == "" {
		return errors.New("missing reference corpus (--references)")
	}
	if cfg.MotionsPath == "" {
		return errors.New("missing annotated motions (--motions)")
	}

	categorizer.SetColumnCandidates(cfg.Columns)
	names := categorizer.DefaultCodeNames()
	if cfg.CodesPath != "" {
		parsed, err := categorizer.ParseCodeDictionary(cfg.CodesPath)
		if err != nil {
			return fmt.Errorf("read code dictionary: %w", err)
		}
		names = parsed
	}
	rows, err := categorizer.ParseReferenceDir(cfg.ReferencePath)
	if err != nil {
		return fmt.Errorf("read reference corpus: %w", err)
	}
	refs, err := categorizer.BuildReferenceCodes(rows, names)
	if err != nil {
		return fmt.Errorf("build reference codes: %w", err)
	}
	motions, err := categorizer.ParseMotions(cfg.MotionsPath)
	if err != nil {
		return fmt.Errorf("read motions: %w", err)
	}
	logger.Info("inputs loaded",
		zap.Int("reference_rows", len(rows)),
		zap.Int("reference_codes", len(refs)),
		zap.Int("motions", len(motions)))

	lemmatizer, err := categorizer.NewLemmatizer(cfg.LemmaCacheSize)
	if err != nil {
		return fmt.Errorf("init lemmatizer: %w", err)
	}
	service, err := categorizer.NewService(cfg, lemmatizer, logger)
	if err != nil {
		return fmt.Errorf("init service: %w", err)
	}
	report, err := service.Run(ctx, motions, refs)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	if err := writeReport(cfg.OutputPath, cfg.Format, report, stdout); err != nil {
		return err
	}
	if summary {
		fmt.Fprint(stderr, report.Summary())
	}
	return nil
}

func writeReport(path string, format categorizer.Format, report categorizer.Report, stdout io.Writer) error {
	if path == "" {
		return categorizer.WriteReport(stdout, report, format)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := categorizer.WriteReport(f, report, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
