// Package main provides the hozo2owl binary entry point.
// hozo2owl converts ontologies exported by the Hozo editor into OWL.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/hozo2owl/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "hozo2owl"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by convert and batch.
type options struct {
	configPath       string
	logLevel         string
	logFormat        string
	format           string
	defaultNamespace string
	strict           bool
	verify           bool
	metricsFile      string
}

func rootCmd() *cobra.Command {
	var (
		opts       options
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "hozo2owl [infile]",
		Short: "Convert Hozo ontologies to OWL",
		Long: `hozo2owl converts an ontology exported by the Hozo ontology editor
(Hozo XML) into OWL, written as Turtle by default.

The input is a file path, or "-" for standard input. Without an input
nothing is converted.

Concepts become classes with rdfs:label and rdfs:comment, the concept
hierarchy becomes rdfs:subClassOf, slots become owl:Restriction
superclasses and the relation hierarchy becomes owl:ObjectProperty
declarations linked by rdfs:subPropertyOf.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			app, err := newApp(cmd, &opts)
			if err != nil {
				return err
			}
			if err := app.ConvertFile(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout(), outputPath); err != nil {
				_ = app.Finish()
				return err
			}
			return app.Finish()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format (turtle, ntriples, rdfxml, jsonld)")
	flags.StringVar(&opts.defaultNamespace, "default-namespace", "", "IRI of the empty prefix")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when distinct labels map to the same term")
	flags.BoolVar(&opts.verify, "verify", false, "Parse the generated Turtle before writing it")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")

	cmd.AddCommand(batchCmd(&opts))
	cmd.AddCommand(vocabularyCmd())
	cmd.AddCommand(configCmd(&opts))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// loadConfig loads the layered config and applies flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	loader := config.NewLoader(newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat))
	cfg, err := loader.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("default-namespace") {
		cfg.Namespace.Default = opts.defaultNamespace
	}
	if flags.Changed("strict") {
		cfg.Mapping.Strict = opts.strict
	}
	if flags.Changed("verify") {
		cfg.Output.Verify = opts.verify
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = opts.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command, opts *options) (*App, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return NewApp(cfg, logger)
}

// newLogger builds the stderr logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	lvl, _ := config.LogConfig{Level: level}.SlogLevel()
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
