package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// globalCache stores parsed documents keyed by source hash.
//
// Cached documents are shared between callers and must not be modified.
var globalCache sync.Map

// state tracks the parsing state of one source.
type state struct {
	once sync.Once
	doc  *Map
	err  error
}

// ParseReader parses YAML from an io.Reader and returns its top-level
// mapping.
//
// Identical sources are parsed only once, even when read from multiple
// goroutines, unless caching is disabled with [WithCache]. The returned
// document is shared by all callers and must be treated as read-only.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Map, error) {
	o := makeOptions(opts...)

	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	o.logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	if o.noCache {
		o.logger.TraceContext(ctx, "cache bypass")

		return parse(ctx, data, o)
	}

	return parseCached(ctx, data, o)
}

// parseCached parses source with caching.
func parseCached(ctx context.Context, source []byte, o options) (*Map, error) {
	sourceHash := xxh3.Hash(source)
	sourceKey := strconv.FormatUint(sourceHash, 36)

	value, cacheHit := globalCache.LoadOrStore(sourceKey, new(state))

	entry, ok := value.(*state)
	if !ok {
		return nil, ErrReadInput.
			With(slog.String("issue", "invalid cache entry type"))
	}

	o.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(sourceHash, 16)),
		slog.Bool("cache_hit", cacheHit),
	)

	entry.once.Do(func() {
		entry.doc, entry.err = parse(ctx, source, o)
	})

	if entry.err != nil {
		// Failed parses are not cached.
		globalCache.CompareAndDelete(sourceKey, entry)

		return nil, entry.err
	}

	return entry.doc, nil
}

// ClearCache removes all cached documents.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache.Clear()
}
