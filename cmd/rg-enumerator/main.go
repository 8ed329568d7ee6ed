// Package main provides the rg-enumerator command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/cancerit/rg-enumerator/internal/output"
	"github.com/cancerit/rg-enumerator/internal/rgenum"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("rg-enumerator version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "enumerate":
		return runEnumerate(args[1:])
	case "config":
		return runConfigArgs(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `rg-enumerator - somatic rearrangement history enumerator

Usage:
  rg-enumerator [options] <command> [arguments]

Commands:
  enumerate   Enumerate somatic rearrangement histories of a starting genome
  config      Manage rg-enumerator configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Enumerate histories of a haploid 3-chromosome genome up to dup depth 2, overall depth 4
  rg-enumerator enumerate 3 0 2 4

  # Same, starting diploid, writing to a file
  rg-enumerator enumerate -o out.tab 3 1 2 4

For more information on a command, use:
  rg-enumerator <command> --help
`)
}

func runEnumerate(args []string) int {
	fs := flag.NewFlagSet("enumerate", flag.ExitOnError)

	var (
		enableInvDup bool
		outputFile   string
		verbose      bool
	)

	fs.BoolVar(&enableInvDup, "enable-inv-dup", false, "Enable the inverted-duplication operator (disabled by default)")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	fs.BoolVar(&verbose, "verbose", false, "Log progress diagnostics to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Enumerate every depth-bounded somatic rearrangement history reachable from
a wild-type starting genome.

Usage:
  rg-enumerator enumerate [options] n_chrs diploid max_dup_depth max_overall_depth

  n_chrs             number of starting reference chromosomes
  diploid            0 for haploid, nonzero for diploid
  max_dup_depth      maximum number of duplicative events per history
  max_overall_depth  maximum total number of events per history

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	positional := fs.Args()
	if len(positional) < 4 {
		fmt.Fprintf(os.Stderr, "Error: expected 4 positional arguments (n_chrs diploid max_dup_depth max_overall_depth), got %d\n", len(positional))
		return ExitError
	}

	nChrs, err := strconv.Atoi(positional[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: n_chrs must be an integer: %v\n", err)
		return ExitError
	}
	diploidArg, err := strconv.Atoi(positional[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: diploid must be an integer: %v\n", err)
		return ExitError
	}
	diploid := diploidArg != 0
	maxDupDepth, err := strconv.Atoi(positional[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: max_dup_depth must be an integer: %v\n", err)
		return ExitError
	}
	maxNonDupDepth, err := strconv.Atoi(positional[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: max_overall_depth must be an integer: %v\n", err)
		return ExitError
	}

	if nChrs < 1 || nChrs > rgenum.MaxRootChromosomes {
		fmt.Fprintf(os.Stderr, "Error: n_chrs must be between 1 and %d\n", rgenum.MaxRootChromosomes)
		return ExitError
	}

	var logger *zap.Logger
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		return ExitError
	}
	defer logger.Sync() //nolint:errcheck

	root, err := rgenum.NewWildType(nChrs, diploid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	var out *os.File
	if outputFile == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return ExitError
		}
		defer out.Close()
	}

	writer := output.NewTabWriter(out)
	if err := writer.WriteHeader(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing header: %v\n", err)
		return ExitError
	}

	cfg := rgenum.Config{
		MaxDepthDup:    maxDupDepth,
		MaxDepthNonDup: maxNonDupDepth,
		EnableInvDup:   enableInvDup,
	}
	engine := rgenum.NewEngine(cfg, logger.Sugar())

	records, err := engine.Run(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
			return ExitError
		}
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Enumerated %d genome(s)\n", len(records))
	return ExitSuccess
}
