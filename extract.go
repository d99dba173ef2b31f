package unzip

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/windtail/unzip/internal/pathutil"
)

// copyBufferSize bounds the memory used to stream one entry to disk.
const copyBufferSize = 32 * 1024

// ExtractOption configures an extraction run.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	overwrite bool
	logger    *slog.Logger
}

// WithOverwrite allows replacing files and directories that already exist
// under the destination. By default the run aborts on the first conflict.
func WithOverwrite(overwrite bool) ExtractOption {
	return func(c *extractConfig) {
		c.overwrite = overwrite
	}
}

// WithLogger sets the logger for extraction diagnostics. Resolved output
// paths are reported at debug level, skipped entries at warn. Logging never
// affects control flow or the result. By default diagnostics are discarded.
func WithLogger(logger *slog.Logger) ExtractOption {
	return func(c *extractConfig) {
		c.logger = logger
	}
}

// Extract materializes the archive's entry tree under destDir, in entry
// order. destDir must already exist.
//
// Entries whose names would resolve outside destDir are skipped, never
// written. Entries whose local header cannot be decoded are skipped. If a
// resolved output path already exists and WithOverwrite was not given, the
// run aborts with an *ExistsError; entries written earlier in the same run
// stay on disk. Directory entries are created together with any missing
// ancestors. File contents are streamed through a fixed-size buffer, so
// arbitrarily large entries extract in bounded memory. The first failed
// filesystem or stream operation aborts the run with the offending path and
// cause.
func (a *Archive) Extract(destDir string, opts ...ExtractOption) error {
	cfg := extractConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := make([]byte, copyBufferSize)
	for _, e := range a.entries {
		rel, ok := pathutil.Sanitize(e.Name)
		if !ok {
			cfg.logger.Warn("skipping unsafe entry name", "name", e.Name)
			continue
		}
		dest := filepath.Join(destDir, filepath.FromSlash(rel))
		cfg.logger.Debug("extracting", "path", dest)

		if !cfg.overwrite {
			if _, err := os.Lstat(dest); err == nil {
				return &ExistsError{
					Path: dest,
					Hint: "extract with overwrite enabled to replace it",
				}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("unzip: stat %s: %w", dest, err)
			}
		}

		switch e.Kind {
		case EntryDir:
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("unzip: create directory %s: %w", dest, err)
			}
		case EntryFile:
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return fmt.Errorf("unzip: create directory %s: %w", filepath.Dir(dest), err)
			}
			if err := extractFile(e, dest, buf, cfg.logger); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractFile streams one entry to dest. The output handle is closed before
// the caller moves to the next entry.
func extractFile(e Entry, dest string, buf []byte, logger *slog.Logger) error {
	rc, err := e.open()
	if err != nil {
		// Undecodable local header; the rest of the archive is still usable.
		logger.Warn("skipping unreadable entry", "name", e.Name, "error", err)
		return nil
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("unzip: create %s: %w", dest, err)
	}

	for {
		n, rerr := rc.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				out.Close()
				return fmt.Errorf("unzip: write %s: %w", dest, werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			out.Close()
			return fmt.Errorf("unzip: read %s: %w", e.Name, rerr)
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("unzip: close %s: %w", dest, err)
	}
	return nil
}
