package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/feltcat/courlan/pkg/sampling"
	"github.com/feltcat/courlan/pkg/urlutils"
)

func main() {
	var (
		input      = flag.String("i", "", "input file, one URL per line (default stdin)")
		output     = flag.String("o", "", "output file (default stdout)")
		sampleSize = flag.Int("sample", 0, "sample size per domain; 0 disables sampling")
		excludeMin = flag.Int("exclude-min", 0, "discard domains with fewer URLs")
		excludeMax = flag.Int("exclude-max", 0, "discard domains with more URLs")
		strict     = flag.Bool("strict", false, "discard URLs failing strict validation")
		filter     = flag.String("filter", "", "keep URLs containing this substring (used when not sampling)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	urls, err := readLines(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "courlan:", err)
		os.Exit(1)
	}

	var out []string
	if *sampleSize > 0 {
		out = sampling.SampleURLs(urls, sampling.Constraint{
			SampleSize: *sampleSize,
			ExcludeMin: *excludeMin,
			ExcludeMax: *excludeMax,
			Strict:     *strict,
		})
	} else {
		out = urlutils.FilterURLs(urls, *filter)
	}

	if err := writeLines(*output, out); err != nil {
		fmt.Fprintln(os.Stderr, "courlan:", err)
		os.Exit(1)
	}
}

func readLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func writeLines(path string, lines []string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}
