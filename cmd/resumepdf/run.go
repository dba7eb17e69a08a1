package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	resumepdf "github.com/alnah/go-resumepdf"
	"github.com/alnah/go-resumepdf/internal/config"
	"github.com/alnah/go-resumepdf/internal/fileutil"
	"github.com/alnah/go-resumepdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInputNotFound      = errors.New("input file not found")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWritePDF           = errors.New("failed to write PDF file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputWithBatch    = errors.New("--output cannot be used with multiple inputs")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---
	filePermissions = 0o644 // rw-r--r--
)

const maxWorkers = 16

// defaultOutputDir receives generated files when neither flag nor config
// names a directory.
const defaultOutputDir = "output"

// Environment groups injectable process dependencies for testing.
type Environment struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Open         func(path string) error
	NewConverter func(opts ...resumepdf.Option) Converter
}

// FileToConvert is a single input/output pair of the batch.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of one conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runParams holds the merged flag+config values driving a run.
type runParams struct {
	input resumepdf.Input // template; Markdown filled per file
	open  bool
	html  bool
}

// run executes the CLI: resolve inputs, convert (in parallel for batches),
// write outputs atomically, and optionally open the result.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: pass at least one markdown file", ErrNoInput)
	}
	if flags.output != "" && len(args) > 1 {
		return ErrOutputWithBatch
	}
	if flags.workers < 0 || flags.workers > maxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, flags.workers, maxWorkers)
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths()))
		}
		return err
	}

	params := mergeFlags(flags, cfg)

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}
	var opts []resumepdf.Option
	if timeout > 0 {
		opts = append(opts, resumepdf.WithTimeout(timeout))
	}

	pool := NewConverterPool(resolvePoolSize(flags.workers), func() Converter {
		return env.NewConverter(opts...)
	})
	defer pool.Close()

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	files, err := resolveFiles(args, flags.output, outputDir, params.input.OnePage)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}

	results := convertBatch(ctx, pool, files, params, env, flags.verbose)
	return reportResults(results, params, flags.quiet, env)
}

// mergeFlags merges CLI flags over config values (CLI wins) into the
// conversion parameters.
func mergeFlags(flags *cliFlags, cfg *config.Config) *runParams {
	pick := func(flagVal, cfgVal string) string {
		if flagVal != "" {
			return flagVal
		}
		return cfgVal
	}

	return &runParams{
		input: resumepdf.Input{
			OnePage:     flags.onePage || cfg.Render.OnePage,
			Engine:      pick(flags.engine, cfg.Render.Engine),
			HeaderColor: pick(flags.headerColor, cfg.Style.HeaderColor),
			FontScheme:  pick(flags.fontScheme, cfg.Style.FontScheme),
			Theme:       pick(flags.theme, cfg.Style.Theme),
		},
		open: flags.openPDF || cfg.Output.Open,
		html: flags.htmlOut,
	}
}

// resolveTimeout parses the timeout from flag or config.
func resolveTimeout(flagVal string, cfg *config.Config) (time.Duration, error) {
	val := flagVal
	if val == "" {
		val = cfg.Render.Timeout
	}
	if val == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q (use e.g. 30s or 2m)", ErrInvalidTimeout, val)
	}
	return d, nil
}

// resolveFiles validates every input path up front, before any parsing or
// rendering starts, and computes the output path for each.
func resolveFiles(args []string, explicitOutput, outputDir string, onePage bool) ([]FileToConvert, error) {
	files := make([]FileToConvert, 0, len(args))
	for _, in := range args {
		if err := validateMarkdownExtension(in); err != nil {
			return nil, err
		}
		if !fileutil.FileExists(in) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}

		out := explicitOutput
		if out == "" {
			out = defaultOutputName(in, onePage)
		}
		if !strings.HasSuffix(strings.ToLower(out), ".pdf") {
			out += ".pdf"
		}
		files = append(files, FileToConvert{
			InputPath:  in,
			OutputPath: filepath.Join(outputDir, out),
		})
	}
	return files, nil
}

// defaultOutputName derives "<stem>_one_page.pdf" or "<stem>_full.pdf"
// from the input filename.
func defaultOutputName(inputPath string, onePage bool) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	suffix := "_full"
	if onePage {
		suffix = "_one_page"
	}
	return stem + suffix + ".pdf"
}

// validateMarkdownExtension checks for a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
}

// convertBatch converts all files using converters from the pool. The batch
// runs concurrently up to the pool size; each conversion is independent and
// results keep input order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *runParams, env *Environment, verbose bool) []ConversionResult {
	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup

	for i, f := range files {
		wg.Add(1)
		go func(i int, f FileToConvert) {
			defer wg.Done()

			conv := pool.Acquire()
			defer pool.Release(conv)

			if verbose {
				fmt.Fprintf(env.Stderr, "converting %s\n", f.InputPath)
			}
			results[i] = convertFile(ctx, conv, f, params)
		}(i, f)
	}
	wg.Wait()

	return results
}

// convertFile converts one file and writes its outputs atomically, so a
// failed render never leaves a truncated PDF behind.
func convertFile(ctx context.Context, conv Converter, f FileToConvert, params *runParams) ConversionResult {
	start := time.Now()
	res := ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return res
	}

	input := params.input
	input.Markdown = string(content)

	out, err := conv.Convert(ctx, input)
	if err != nil {
		res.Err = decorateConversionError(err)
		return res
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, out.PDF, filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
		return res
	}

	if params.html && len(out.HTML) > 0 {
		htmlPath := strings.TrimSuffix(f.OutputPath, ".pdf") + ".html"
		if err := fileutil.WriteFileAtomic(htmlPath, out.HTML, filePermissions); err != nil {
			res.Err = fmt.Errorf("writing HTML: %w", err)
			return res
		}
	}

	res.Duration = time.Since(start)
	return res
}

// decorateConversionError appends actionable hints to known failures.
func decorateConversionError(err error) error {
	switch {
	case errors.Is(err, resumepdf.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, resumepdf.ErrPageLoad):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	default:
		return err
	}
}

// reportResults prints per-file outcomes and opens the viewer on success.
// The first error encountered is returned so the process exits non-zero.
func reportResults(results []ConversionResult, params *runParams, quiet bool, env *Environment) error {
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "%s: %v\n", r.InputPath, r.Err)
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", r.InputPath, r.Err)
			}
			continue
		}

		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s (%.1fs)\n", r.OutputPath, r.Duration.Seconds())
		}
		if params.open {
			// Fire-and-forget: viewer failures never fail the run.
			_ = env.Open(r.OutputPath)
		}
	}
	return firstErr
}
