package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/hozo2owl/config"
	"github.com/c360studio/hozo2owl/export"
	"github.com/c360studio/hozo2owl/hozo"
	"github.com/c360studio/hozo2owl/mapper"
	"github.com/c360studio/hozo2owl/metric"
)

// App wires the parser, mapper, serializers and metrics for one invocation.
type App struct {
	cfg       *config.Config
	format    export.Format
	logger    *slog.Logger
	collector *metric.Collector
	mapper    *mapper.Mapper
}

// NewApp creates an application from a validated config.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	logger = logger.With("run_id", uuid.NewString())

	var collector *metric.Collector
	var observer mapper.Observer
	if cfg.Metrics.Textfile != "" {
		collector = metric.NewCollector()
		observer = collector
	}

	return &App{
		cfg:       cfg,
		format:    format,
		logger:    logger,
		collector: collector,
		mapper: mapper.New(cfg.Namespace.Prefixes, mapper.Options{
			DefaultNamespace: cfg.Namespace.Default,
			Strict:           cfg.Mapping.Strict,
			Logger:           logger,
			Observer:         observer,
		}),
	}, nil
}

// Convert reads a Hozo document from in and writes the ontology to out.
func (a *App) Convert(ctx context.Context, name string, in io.Reader, out io.Writer) error {
	start := time.Now()
	result, err := a.convert(ctx, in, out)
	elapsed := time.Since(start)

	a.collector.ObserveRun(err, elapsed)
	if err != nil {
		a.logger.Debug("Conversion failed", "input", name, "result", metric.ResultOf(err))
		return err
	}

	a.logger.Info("Converted ontology",
		"input", name,
		"format", a.format,
		"concepts", len(result.ConceptNames),
		"triples", result.Stats.Triples(),
		"restrictions", result.Stats.Restrictions(),
		"collisions", result.Stats.Collisions,
		"duration", elapsed)
	return nil
}

func (a *App) convert(ctx context.Context, in io.Reader, out io.Writer) (*mapper.Result, error) {
	doc, err := hozo.Parse(in)
	if err != nil {
		return nil, err
	}

	// Plain Turtle streams straight to out.
	if a.format == export.FormatTurtle && !a.cfg.Output.Verify {
		lw := export.NewLineWriter(out)
		result, err := a.mapper.Convert(doc, lw)
		if err != nil {
			return nil, err
		}
		if err := lw.Flush(); err != nil {
			return nil, err
		}
		return result, nil
	}

	var buf export.LineBuffer
	result, err := a.mapper.Convert(doc, &buf)
	if err != nil {
		return nil, err
	}
	turtle := buf.String()

	if a.format != export.FormatTurtle {
		if _, err := export.Transcode(ctx, strings.NewReader(turtle), out, a.format); err != nil {
			return nil, err
		}
		return result, nil
	}

	n, err := export.Verify(ctx, strings.NewReader(turtle))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Verified turtle", "statements", n)
	if _, err := io.WriteString(out, turtle); err != nil {
		return nil, err
	}
	return result, nil
}

// ConvertFile converts path ("-" for stdin) to outPath ("" for stdout).
func (a *App) ConvertFile(ctx context.Context, path string, stdin io.Reader, stdout io.Writer, outPath string) error {
	in := stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		name = path
	}

	if outPath == "" {
		return a.Convert(ctx, name, in, stdout)
	}

	return export.WriteFileAtomic(outPath, func(w io.Writer) error {
		return a.Convert(ctx, name, in, w)
	})
}

// Finish writes the metrics textfile if one is configured.
func (a *App) Finish() error {
	return a.collector.WriteTextfile(a.cfg.Metrics.Textfile)
}
