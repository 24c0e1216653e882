package main

import (
	"bufio"
	"bytes"
	"fmt"
	stdio "io"
	"io/ioutil"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/k0kubun/sqldigest/digest"
	"github.com/k0kubun/sqldigest/util"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func main() {
	util.InitLogrus()
	opts := parseOptions(os.Args[1:])

	cfg := digest.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = loadConfigFile(opts.ConfigPath, cfg)
		if err != nil {
			logrus.Fatal(err)
		}
	}
	if opts.Set != "" {
		var err error
		cfg, err = applySetOverrides(opts.Set, cfg)
		if err != nil {
			logrus.Fatal(err)
		}
	}

	if opts.Debug {
		pp.Println(cfg)
	}

	queries, err := collectQueries(opts)
	if err != nil {
		logrus.Fatal(err)
	}

	var w stdio.Writer = os.Stdout
	if opts.Color && isatty.IsTerminal(os.Stdout.Fd()) {
		w = colorable.NewColorableStdout()
	}

	results := util.TransformSlice(queries, func(q string) string {
		return process(q, cfg, opts)
	})
	for _, r := range results {
		fmt.Fprintln(w, highlightDigest(r, opts))
	}
}

// highlightDigest wraps placeholder tokens in ANSI color codes when
// highlighting was requested; colorable takes care of stripping them
// back out on non-ANSI terminals (e.g. Windows consoles).
func highlightDigest(s string, opts *cliOptions) string {
	if !opts.Color || opts.StripComments {
		return s
	}
	const (
		yellow = "\x1b[33m"
		reset  = "\x1b[0m"
	)
	var b bytes.Buffer
	for i := 0; i < len(s); i++ {
		if s[i] == '?' {
			b.WriteString(yellow)
			b.WriteByte('?')
			b.WriteString(reset)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// process runs the configured transformation (strip-comments, first
// comment extraction, or full digest) over a single query.
func process(query string, cfg digest.Config, opts *cliOptions) string {
	if opts.StripComments {
		return digest.StripComments(query, cfg)
	}

	d, comment := digest.Digest(query, cfg)
	if opts.FirstCommentOnly {
		return comment
	}
	return d
}

// collectQueries resolves opts into the literal query text to
// process: opts.Queries takes precedence, then each of opts.Files is
// read in turn ("-" meaning stdin).
func collectQueries(opts *cliOptions) ([]string, error) {
	if len(opts.Queries) > 0 {
		return opts.Queries, nil
	}

	queries := make([]string, 0, len(opts.Files))
	for _, f := range opts.Files {
		q, err := readFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", f, err)
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// readFile reads SQL text from path, or from stdin when path is "-".
func readFile(path string) (string, error) {
	if path == "-" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("stdin is not piped")
		}

		var buffer bytes.Buffer
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			buffer.WriteString(scanner.Text())
			buffer.WriteByte('\n')
		}
		return buffer.String(), nil
	}

	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
