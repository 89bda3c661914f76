// Package sources collects the Solidity files of a project in submission order.
//
// Entry files come first, in the order given. Their imports follow level by
// level, each level in the order the imports appear, so that a verification
// request lists the entry point before its dependencies.
package sources

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds the number of files read at once.
const maxConcurrentReads = 8

// Collector reads source files below a base directory and follows their imports.
type Collector struct {
	baseDir    string
	remappings []artifacts.Remapping
	logger     *slog.Logger
}

// NewCollector creates a Collector. A nil logger discards output.
func NewCollector(baseDir string, remappings []artifacts.Remapping, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collector{
		baseDir:    baseDir,
		remappings: remappings,
		logger:     logger,
	}
}

// Collect returns the entry files and everything they import, each file once.
// Paths are slash separated and relative to the base directory unless a
// remapping points outside of it.
func (c *Collector) Collect(ctx context.Context, entries ...string) (artifacts.Sources, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entry files given")
	}

	seen := make(map[string]struct{})
	var level []string
	for _, e := range entries {
		p := path.Clean(filepath.ToSlash(e))
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		level = append(level, p)
	}

	out := artifacts.Sources{}
	for depth := 0; len(level) > 0; depth++ {
		contents, err := c.readAll(ctx, level)
		if err != nil {
			return nil, err
		}

		var next []string
		for i, p := range level {
			out = append(out, artifacts.Entry[artifacts.Source]{Key: p, Value: artifacts.NewSource(contents[i])})
			c.logger.Debug("collected source", "path", p, "depth", depth, "bytes", len(contents[i]))

			for _, imp := range ParseImports(contents[i]) {
				resolved := resolveImport(c.remappings, p, imp)
				if _, ok := seen[resolved]; ok {
					continue
				}
				seen[resolved] = struct{}{}
				next = append(next, resolved)
			}
		}
		level = next
	}

	c.logger.Debug("collected sources", "count", len(out))
	return out, nil
}

// readAll reads the files of one level concurrently. Results keep the order of paths.
func (c *Collector) readAll(ctx context.Context, paths []string) ([]string, error) {
	contents := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := artifacts.ReadSource(c.filePath(p))
			if err != nil {
				return err
			}
			contents[i] = src.Content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}

func (c *Collector) filePath(p string) string {
	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) {
		return native
	}
	return filepath.Join(c.baseDir, native)
}
