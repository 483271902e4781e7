package checker

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"idlcheck/internal/compat"
	"idlcheck/internal/idl"
)

// Options tunes a directory-level compatibility run.
type Options struct {
	// Jobs bounds worker parallelism. Zero or negative means GOMAXPROCS.
	Jobs int
	// CacheDir enables the on-disk parse cache when non-empty.
	CacheDir string
	// Events receives per-file progress notifications when non-nil. The
	// caller owns the channel; CheckDirs never closes it.
	Events chan<- Event
}

// ListIDLFiles returns the sorted relative paths of all *.idl files under
// dir.
func ListIDLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".idl") {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

type filePairResult struct {
	oldDoc *idl.Document
	newDoc *idl.Document
	errors *compat.ErrorCollection
}

// CheckDirs runs the compatibility check over every *.idl file under
// oldDir against its counterpart under newDir. Files are processed in
// parallel but the returned collection lists errors in sorted file
// order, so two runs over the same trees produce identical output.
func CheckDirs(ctx context.Context, oldDir, newDir string, cfg *Config, opts Options) (*compat.ErrorCollection, error) {
	files, err := ListIDLFiles(oldDir)
	if err != nil {
		return nil, err
	}

	merged := compat.NewErrorCollection()
	if len(files) == 0 {
		return merged, nil
	}

	var cache *DiskCache
	if opts.CacheDir != "" {
		cache, err = OpenDiskCache(opts.CacheDir)
		if err != nil {
			return nil, err
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if _, err := safecast.Conv[uint16](jobs); err != nil {
		return nil, fmt.Errorf("jobs out of range: %w", err)
	}

	checker := New(cfg)

	// Index-addressed results, no mutex needed.
	results := make([]filePairResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, rel := range files {
		emit(opts.Events, rel, StageParse, StatusQueued, nil)
		g.Go(func(i int, rel string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				emit(opts.Events, rel, StageParse, StatusWorking, nil)
				oldDoc, err := loadDocument(cache, filepath.Join(oldDir, rel), rel)
				if err != nil {
					emit(opts.Events, rel, StageParse, StatusError, err)
					return fmt.Errorf("%s: %w", rel, err)
				}
				newDoc, err := loadDocument(cache, filepath.Join(newDir, rel), rel)
				if err != nil {
					emit(opts.Events, rel, StageParse, StatusError, err)
					return fmt.Errorf("%s: %w", rel, err)
				}

				emit(opts.Events, rel, StageCompare, StatusWorking, nil)
				errors := compat.NewErrorCollection()
				checker.CheckFilePair(compat.NewContext(oldDir, newDir, errors), oldDoc, newDoc)

				results[i] = filePairResult{oldDoc: oldDoc, newDoc: newDoc, errors: errors}
				emit(opts.Events, rel, StageCompare, StatusDone, nil)
				return nil
			}
		}(i, rel))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Duplicate command names across files are checked per directory,
	// over the whole tree, before the per-file errors.
	dupCtx := compat.NewContext(oldDir, newDir, merged)
	reportDuplicateCommands(dupCtx, oldDir, files, results, func(r filePairResult) *idl.Document { return r.oldDoc })
	reportDuplicateCommands(dupCtx, newDir, files, results, func(r filePairResult) *idl.Document { return r.newDoc })
	for _, res := range results {
		merged.Merge(res.errors)
	}
	return merged, nil
}

// loadDocument parses one IDL file, consulting the cache by content
// digest. A missing file parses as an empty document so every command in
// its counterpart reports as removed.
func loadDocument(cache *DiskCache, path, rel string) (*idl.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &idl.Document{File: rel}, nil
		}
		return nil, err
	}

	key := DigestOf(data)
	if doc, ok, err := cache.Get(key); err == nil && ok {
		return doc, nil
	}

	doc, err := idl.Parse(bytes.NewReader(data), rel)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(key, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// reportDuplicateCommands flags command names defined in more than one
// file of one directory. Files are already sorted, so the first
// definition wins and every later one is reported.
func reportDuplicateCommands(ctx *compat.Context, dir string, files []string, results []filePairResult, pick func(filePairResult) *idl.Document) {
	seen := make(map[string]string)
	for i, rel := range files {
		doc := pick(results[i])
		if doc == nil {
			continue
		}
		for _, name := range sortedKeys(doc.Commands) {
			if _, ok := seen[name]; ok {
				ctx.ReportDuplicateCommandName(name, dir, rel)
				continue
			}
			seen[name] = rel
		}
	}
}
