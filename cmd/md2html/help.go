package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML pages")
	fmt.Fprintln(w, "  build      Build a static site from a content directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to complete HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (default: site.contentDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --dump-tree           Print the node tree instead of writing pages")
	fmt.Fprintln(w)
	printRenderUsage(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF next to each page")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	printOutputUsage(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html convert README.md")
	fmt.Fprintln(w, "  md2html convert content/ -o docs/ --base-path /blog/")
	fmt.Fprintln(w, "  md2html convert notes.md --pdf --page-size a4")
	fmt.Fprintln(w, "  md2html convert notes.md --dump-tree")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy the static directory into the output directory, then render every")
	fmt.Fprintln(w, "markdown file under the content directory to the same relative path.")
	fmt.Fprintln(w, "Files whose bytes did not change are left untouched.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown sources (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static assets (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Site output (default: docs)")
	fmt.Fprintln(w, "      --no-prune            Keep output files no source produced")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printRenderUsage(w)
	printOutputUsage(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html build")
	fmt.Fprintln(w, "  md2html build --base-path /blog/ -o public")
}

func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>       Markdown engine: native (default), goldmark")
	fmt.Fprintln(w, "      --base-path <path>    URL prefix for root-relative links")
	fmt.Fprintln(w, "      --strict              Fail on pages without a leading \"# \" heading")
	fmt.Fprintln(w, "      --style <name|path>   CSS style (built-in: default, plain)")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w, "      --template <name|path> Page template with {{ Title }} and {{ Content }}")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
}

func printOutputUsage(w io.Writer) {
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and sizes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG            Config file when --config is not set")
	fmt.Fprintln(w, "  MD2HTML_WORKERS           Worker count when --workers is not set")
	fmt.Fprintln(w)
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the md2html version.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
