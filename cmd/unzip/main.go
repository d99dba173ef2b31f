// Command unzip lists or extracts a ZIP archive.
//
// Usage:
//
//	unzip [flags] <file>
//
// Flags:
//
//	-l    list entries instead of extracting
//	-f    force overwrite of existing files
//	-d dir
//	      directory to extract into (default ".")
//	-v    verbose diagnostics
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/windtail/unzip"
)

func main() {
	list := flag.Bool("l", false, "list entries instead of extracting")
	force := flag.Bool("f", false, "force overwrite of existing files")
	dir := flag.String("d", ".", "directory to extract into")
	verbose := flag.Bool("v", false, "verbose diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: unzip [-l] [-f] [-v] [-d dir] <file>")
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), *list, *force, *dir, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exists *unzip.ExistsError
		if errors.As(err, &exists) {
			fmt.Fprintln(os.Stderr, "use -f to overwrite existing files")
		}
		os.Exit(1)
	}
}

func run(path string, list, force bool, dir string, logger *slog.Logger) error {
	a, err := unzip.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()

	if list {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, row := range a.List() {
			fmt.Fprintf(w, "%s\t%d\t%s\n", row.Name, row.Size, row.Modified.Format(time.DateTime))
		}
		return w.Flush()
	}

	dest, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	return a.Extract(dest, unzip.WithOverwrite(force), unzip.WithLogger(logger))
}
