package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the resumepdf CLI.
type cliFlags struct {
	onePage   bool
	output    string
	outputDir string
	openPDF   bool
	engine    string
	htmlOut   bool

	headerColor string
	fontScheme  string
	theme       string

	config  string
	quiet   bool
	verbose bool
	workers int
	timeout string

	version bool
}

// newFlagSet builds the CLI flag set bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("resumepdf", flag.ContinueOnError)

	fs.BoolVarP(&f.onePage, "one-page", "1", false, "compress to a single page with dynamic sizing")
	fs.StringVarP(&f.output, "output", "o", "", "output filename (single input only)")
	fs.StringVar(&f.outputDir, "output-dir", "", "output directory (default: output)")
	fs.BoolVar(&f.openPDF, "open", false, "open the generated PDF after creation")
	fs.StringVar(&f.engine, "engine", "", "layout engine: auto, chrome, fpdf")
	fs.BoolVar(&f.htmlOut, "html", false, "also write the intermediate HTML (chrome engine)")

	fs.StringVar(&f.headerColor, "header-color", "", `header banner color: #RRGGBB or "white"`)
	fs.StringVar(&f.fontScheme, "font-scheme", "", "font scheme: modern, serif, sans")
	fs.StringVar(&f.theme, "theme", "", "color theme: light, dark")

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batch input (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "browser print timeout (e.g. 30s, 2m)")

	fs.BoolVar(&f.version, "version", false, "print version and exit")

	return fs
}

// parseFlags parses args (excluding the program name) and returns the
// flags plus positional arguments.
func parseFlags(args []string, usageOut io.Writer) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	fs.Usage = func() { printUsage(usageOut, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// printUsage writes the CLI usage text.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: resumepdf [flags] <resume.md> [more.md ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown resume to a styled, paginated PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
