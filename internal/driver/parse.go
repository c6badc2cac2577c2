package driver

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cfgpp/internal/diag"
	"cfgpp/internal/parser"
	"cfgpp/internal/source"
	"cfgpp/internal/trace"
	"cfgpp/internal/value"
)

type ParseResult struct {
	Path    string
	FileSet *source.FileSet
	Value   *value.Value
	Bag     *diag.Bag
}

// Parse runs the full pipeline over one file: load, lex, build the value
// tree. The returned bag carries diagnostics even when parsing fails.
func Parse(path string, opts parser.Options, maxDiagnostics int) (*ParseResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	opts.Reporter = diag.BagReporter{Bag: bag}

	sp := trace.Begin(opts.Tracer, trace.ScopePhase, "parse", 0).WithExtra("file", path)
	defer sp.End("")

	p := parser.New(opts)
	v, err := p.ParseFile(path)
	res := &ParseResult{
		Path:    path,
		FileSet: p.FileSet(),
		Value:   v,
		Bag:     bag,
	}
	if err != nil {
		return res, err
	}
	return res, nil
}

// ParseAll parses several files concurrently, each with its own parser and
// FileSet, then merges the top-level objects in argument order so later
// files override earlier ones. Files whose root is not an object are
// skipped during the merge, matching the sequential multi-file behavior.
func ParseAll(ctx context.Context, paths []string, opts parser.Options, maxDiagnostics int) (*value.Value, []*ParseResult, error) {
	return ParseAllProgress(ctx, paths, opts, maxDiagnostics, nil)
}

// ParseAllProgress is ParseAll with per-file progress events. The channel is
// closed when the batch finishes; a nil channel disables reporting.
func ParseAllProgress(ctx context.Context, paths []string, opts parser.Options, maxDiagnostics int, progress chan<- Event) (*value.Value, []*ParseResult, error) {
	if progress != nil {
		defer close(progress)
	}
	emitQueued(progress, paths)

	results := make([]*ParseResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			emit(progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
			res, err := Parse(path, opts, maxDiagnostics)
			results[i] = res
			if err != nil {
				emit(progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: err})
				return err
			}
			emit(progress, Event{File: path, Stage: StageParse, Status: StatusDone})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, results, err
	}

	root := value.Object()
	for _, res := range results {
		if res == nil || res.Value == nil || !res.Value.IsObject() {
			continue
		}
		for _, key := range res.Value.Keys() {
			child, _ := res.Value.Get(key)
			if err := root.Set(key, child); err != nil {
				return nil, results, err
			}
		}
	}
	return root, results, nil
}

// ParseCached consults the disk cache before parsing. The boolean reports a
// cache hit. A nil cache degrades to a plain Parse.
func ParseCached(cache *DiskCache, path string, opts parser.Options, maxDiagnostics int) (*value.Value, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	key := CacheKey(content, opts)

	if v, ok, err := cache.Get(key); err == nil && ok {
		trace.Point(opts.Tracer, trace.ScopePhase, "cache", "hit")
		return v, true, nil
	}
	trace.Point(opts.Tracer, trace.ScopePhase, "cache", "miss")

	res, err := Parse(path, opts, maxDiagnostics)
	if err != nil {
		return nil, false, err
	}
	if err := cache.Put(key, res.Value); err != nil {
		return res.Value, false, err
	}
	return res.Value, false, nil
}
