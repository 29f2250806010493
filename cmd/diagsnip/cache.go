package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/surge-lang/diagsnip/source"
)

// lineIndexPayload is the serialized form of a Source's precomputed line
// index -- the part of parsing that is worth skipping on a warm cache hit,
// since scanning line breaks is the only work New does.
type lineIndexPayload struct {
	Schema   uint16
	Path     string
	Size     int
	LineEnds []uint32
}

const cacheSchemaVersion uint16 = 1

// diskCache persists one lineIndexPayload per source path, keyed by a
// content hash so a changed file simply misses rather than serving stale
// data.
type diskCache struct {
	dir string
}

func openDiskCache() (*diskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, "diagsnip")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskCache{dir: dir}, nil
}

func (c *diskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "sources", hex.EncodeToString(key[:])+".mp")
}

func (c *diskCache) put(key [32]byte, payload *lineIndexPayload) error {
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

func (c *diskCache) dropAll() error {
	return os.RemoveAll(filepath.Join(c.dir, "sources"))
}

func contentKey(text string) [32]byte {
	return sha256.Sum256([]byte(text))
}

var cacheJobs int

func init() {
	cacheWarmCmd.Flags().IntVar(&cacheJobs, "jobs", 0, "parallel warm-up workers (0 = GOMAXPROCS)")
	cacheCmd.AddCommand(cacheWarmCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk line-index cache",
}

var cacheWarmCmd = &cobra.Command{
	Use:   "warm <file>...",
	Short: "Parse and cache the line index for a set of files in parallel",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := append([]string(nil), args...)
		sort.Strings(paths)

		dc, err := openDiskCache()
		if err != nil {
			return err
		}

		jobs := cacheJobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(paths)))

		for _, path := range paths {
			path := path
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				return warmOne(dc, path)
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "warmed %d source(s)\n", len(paths))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the on-disk line-index cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := openDiskCache()
		if err != nil {
			return err
		}
		return dc.dropAll()
	},
}

func warmOne(dc *diskCache, path string) error {
	cache := source.NewFileCache()
	src, err := cache.Fetch(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	key := contentKey(string(text))

	lineEnds := make([]uint32, src.LineCount())
	for i := 0; i < src.LineCount(); i++ {
		line := src.Line(i)
		lineEnds[i] = line.ByteOffset + line.ByteLen
	}

	payload := &lineIndexPayload{
		Schema:   cacheSchemaVersion,
		Path:     path,
		Size:     len(text),
		LineEnds: lineEnds,
	}
	return dc.put(key, payload)
}
