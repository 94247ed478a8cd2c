package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds flags for a site build.
type buildFlags struct {
	common         commonFlags
	output         string
	layouts        string
	defaultLayout  string
	defaultTitle   string
	highlightStyle string
	workers        int
	keepGoing      bool
	escape         bool
	rewriteLinks   bool

	// set records the flags given on the command line, so an explicit
	// --keep-going=false still overrides a config file.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// parseBuildFlags parses build flags and returns positional args.
// Usage and parse errors are written to w.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("mdsite", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.layouts, "layouts", "l", "", "layouts directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Page flags
	fs.StringVar(&f.defaultLayout, "default-layout", "", "layout for pages that name none")
	fs.StringVar(&f.defaultTitle, "default-title", "", "title for pages that name none")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks (empty = CSS classes)")
	fs.BoolVar(&f.escape, "escape", false, "HTML-escape the title slot")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite links to source documents into page addresses")

	// Failure policy
	fs.BoolVar(&f.keepGoing, "keep-going", false, "build every page even after a failure")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}

// mergeFlags merges CLI flags into config. Flags given on the command line
// override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.layouts != "" {
		cfg.Layouts = flags.layouts
	}
	if flags.defaultLayout != "" {
		cfg.DefaultLayout = flags.defaultLayout
	}
	if flags.defaultTitle != "" {
		cfg.DefaultTitle = flags.defaultTitle
	}
	if flags.set["highlight-style"] {
		cfg.HighlightStyle = flags.highlightStyle
	}
	if flags.set["workers"] {
		cfg.Workers = flags.workers
	}
	if flags.set["keep-going"] {
		cfg.KeepGoing = flags.keepGoing
	}
	if flags.set["escape"] {
		cfg.EscapeSlots = flags.escape
	}
	if flags.set["rewrite-links"] {
		cfg.RewriteLinks = flags.rewriteLinks
	}
}
