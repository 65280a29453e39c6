package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/hozo2owl/config"
	"github.com/c360studio/hozo2owl/export"
	vocab "github.com/c360studio/hozo2owl/vocabulary/hozo"
)

func batchCmd(opts *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "batch PATTERN",
		Short: "Convert every file matching a glob pattern",
		Long: `Convert every Hozo XML file matching PATTERN into --out-dir.

PATTERN supports ** for recursive matching (ontologies/**/*.xml). Each
input is written under --out-dir at its path relative to the pattern's
static base, with the extension set by --format, so ontologies/a/x.xml
becomes <out-dir>/a/x.ttl. Every file is attempted; the command fails if
any conversion failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := doublestar.FilepathGlob(args[0], doublestar.WithFilesOnly())
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", args[0], err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no files match %q", args[0])
			}

			app, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			info, _ := export.GetFormatInfo(app.format)
			outputs, err := batchOutputs(args[0], matches, outDir, info.Extension)
			if err != nil {
				return err
			}

			var errs []error
			for i, path := range matches {
				outPath := outputs[i]
				if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
				if err := app.ConvertFile(cmd.Context(), path, nil, nil, outPath); err != nil {
					app.logger.Error("Conversion failed", "input", path, "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, outPath)
			}

			if err := app.Finish(); err != nil {
				errs = append(errs, err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d conversions failed: %w", len(errs), len(matches), stderrors.Join(errs...))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for converted files")
	return cmd
}

// batchOutputs maps each match to its output path under outDir, keeping the
// match's path relative to the pattern's static base. Two matches that would
// write the same output are rejected before anything is converted.
func batchOutputs(pattern string, matches []string, outDir, ext string) ([]string, error) {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	outputs := make([]string, len(matches))
	sources := make(map[string]string, len(matches))
	for i, path := range matches {
		rel, err := filepath.Rel(base, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			rel = filepath.Base(path)
		}
		outPath := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+ext)
		if prev, ok := sources[outPath]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, path, outPath)
		}
		sources[outPath] = path
		outputs[i] = outPath
	}
	return outputs, nil
}

func vocabularyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "List the predicates written to the ontology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings := vocab.Mappings()
			sort.Slice(mappings, func(i, j int) bool {
				return mappings[i].Predicate < mappings[j].Predicate
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PREDICATE\tQNAME\tIRI\tDESCRIPTION")
			for _, m := range mappings {
				var iri, description string
				if meta := vocabulary.GetPredicateMetadata(m.Predicate); meta != nil {
					iri, description = meta.StandardIRI, meta.Description
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Predicate, m.QName, iri, description)
			}
			return w.Flush()
		},
	}
}

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the user config with defaults if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat))
			path, err := loader.EnsureUserConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	return cmd
}
