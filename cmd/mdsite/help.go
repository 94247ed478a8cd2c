package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [flags] [source]")
	fmt.Fprintln(w, "       mdsite <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static site from a tree of markdown documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a topic")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help build' for build flags.")
}

// printBuildUsage prints usage for a site build.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [flags] [source]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every markdown document below source to <output>/<address>/index.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Source root (default: \"src\", or source in the config file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output root (default: \"public\")")
	fmt.Fprintln(w, "  -l, --layouts <dir>         Layouts directory (default: \"templates\")")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --default-layout <name> Layout for pages that name none (default: \"base-1.html\")")
	fmt.Fprintln(w, "      --default-title <s>     Title for pages that name none (default: \"NO TITLE\")")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style for code blocks (default: CSS classes)")
	fmt.Fprintln(w, "      --escape                HTML-escape the title slot")
	fmt.Fprintln(w, "      --rewrite-links         Point links to .md sources at page addresses")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Failures:")
	fmt.Fprintln(w, "      --keep-going            Build every page even after a failure")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timing and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_SOURCE, MDSITE_OUTPUT, MDSITE_LAYOUTS,")
	fmt.Fprintln(w, "  MDSITE_DEFAULT_LAYOUT, MDSITE_HIGHLIGHT_STYLE, MDSITE_WORKERS")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdsite")
	fmt.Fprintln(w, "  mdsite docs -o site --keep-going")
	fmt.Fprintln(w, "  mdsite -c production --highlight-style monokai")
}

// runHelp prints help for the given topic and returns an exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown help topic: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
