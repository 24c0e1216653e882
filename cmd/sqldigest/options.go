package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

var version string

// cliOptions is the parsed command line, before any YAML config or
// --set overrides have been folded into a digest.Config.
type cliOptions struct {
	// Files holds file paths to read SQL from ("-" means stdin), used
	// when no literal query is given on the command line.
	Files []string
	// Queries holds literal SQL text passed as positional arguments,
	// taking precedence over Files when non-empty.
	Queries          []string
	StripComments    bool
	ConfigPath       string
	Set              string
	Color            bool
	Debug            bool
	FirstCommentOnly bool
}

// parseOptions parses args (excluding the program name) into a
// cliOptions, exiting the process for --help/--version and for usage
// errors, mirroring the other *def commands' parseOptions contract.
func parseOptions(args []string) *cliOptions {
	var opts struct {
		File             []string `long:"file" description:"Read SQL from the file, rather than stdin. Repeatable for batch mode" value-name:"sql_file"`
		StripComments    bool     `long:"strip-comments" description:"Strip comments only, without normalizing literals"`
		Config           string   `long:"config" description:"Load digest options from a YAML file" value-name:"config_file"`
		Set              string   `long:"set" description:"Override digest options, e.g. --set \"lowercase=true grouping_limit=5\""`
		Color            bool     `long:"color" description:"Highlight digest output when writing to a terminal"`
		Debug            bool     `long:"debug" description:"Print the resolved digest config before processing"`
		FirstCommentOnly bool     `long:"first-comment-only" description:"Print only the extracted first comment, not the digest"`
		Help             bool     `long:"help" description:"Show this help"`
		Version          bool     `long:"version" description:"Show this version"`
	}

	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] [query]"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}

	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	files := opts.File
	if len(files) == 0 && len(remaining) == 0 {
		files = []string{"-"}
	}

	return &cliOptions{
		Files:            files,
		Queries:          remaining,
		StripComments:    opts.StripComments,
		ConfigPath:       opts.Config,
		Set:              opts.Set,
		Color:            opts.Color,
		Debug:            opts.Debug,
		FirstCommentOnly: opts.FirstCommentOnly,
	}
}
