package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ardnew/mung"

	"github.com/ardnew/aconf/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable with the given identifier.
func kongVar(ctx context.Context, ident string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return "", false
	}

	v, ok := ktx.Model.Vars()[ident]

	return v, ok
}

type streamsKey struct{}

// streams are the standard streams used by a command.
type streams struct {
	in  io.Reader
	out io.Writer
}

// WithStreams returns a new context.Context whose commands read standard
// input from in and write results to out.
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func streamsFrom(ctx context.Context) streams {
	s, _ := ctx.Value(streamsKey{}).(streams)

	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s
}

type searchPathKey struct{}

// WithSearchPath returns a new context.Context whose commands look up
// relative input files not found in the working directory in each of dirs,
// in order.
//
// The dirs are merged with env, a PATH-like list (for example the value of
// $ACONF_PATH): dirs come first, duplicates are dropped, and entries that are
// not directories are ignored.
func WithSearchPath(
	ctx context.Context,
	env string,
	dirs ...string,
) context.Context {
	return context.WithValue(ctx, searchPathKey{}, makeSearchPath(env, dirs...))
}

func makeSearchPath(env string, dirs ...string) []string {
	sep := string(os.PathListSeparator)

	joined := mung.Make(
		mung.WithSubjectItems(env),
		mung.WithDelim(sep),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	var path []string

	for dir := range strings.SplitSeq(joined, sep) {
		if dir != "" {
			path = append(path, dir)
		}
	}

	return path
}

func searchPathFrom(ctx context.Context) []string {
	path, _ := ctx.Value(searchPathKey{}).([]string)

	return path
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// input is a resolved input file.
type input struct {
	name string // as given on the command line
	path string // resolved path, or stdinSource
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// resolveInputs resolves the given input names to files.
//
// A name of "-" stands for standard input. Relative names that do not exist
// in the working directory are looked up in the search path. Names resolving
// to the same file (by device and inode) are kept only once, at their first
// position; standard input is read at most once.
func resolveInputs(ctx context.Context, names []string) ([]input, error) {
	inputs := make([]input, 0, len(names))
	seen := make(map[fileKey]struct{})
	stdin := false

	for _, name := range names {
		if name == stdinSource {
			if !stdin {
				stdin = true

				inputs = append(inputs, input{name: name, path: stdinSource})
			}

			continue
		}

		path, err := findInput(ctx, name)
		if err != nil {
			return nil, err
		}

		if key, ok := statFileKey(path); ok {
			if _, dup := seen[key]; dup {
				log.DebugContext(ctx, "skipping duplicate input",
					slog.String("input", name),
					slog.String("path", path),
				)

				continue
			}

			seen[key] = struct{}{}
		}

		inputs = append(inputs, input{name: name, path: path})
	}

	return inputs, nil
}

// findInput returns the path of the named input file.
func findInput(ctx context.Context, name string) (string, error) {
	_, err := os.Stat(name)
	if err == nil {
		return name, nil
	}

	if filepath.IsAbs(name) {
		return "", ErrOpenInput.
			With(slog.String("input", name)).
			Wrap(err)
	}

	for _, dir := range searchPathFrom(ctx) {
		path := filepath.Join(dir, name)

		if _, serr := os.Stat(path); serr == nil {
			log.DebugContext(ctx, "found input in search path",
				slog.String("input", name),
				slog.String("dir", dir),
			)

			return path, nil
		}
	}

	return "", ErrOpenInput.
		With(slog.String("input", name)).
		Wrap(err)
}

// statFileKey returns the device/inode pair of the file at path, following
// symlinks.
func statFileKey(path string) (fileKey, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}

// open opens the input for reading. Standard input is never closed.
func (in input) open(ctx context.Context) (io.ReadCloser, error) {
	if in.path == stdinSource {
		return io.NopCloser(streamsFrom(ctx).in), nil
	}

	file, err := os.Open(in.path)
	if err != nil {
		return nil, ErrOpenInput.
			With(slog.String("input", in.name)).
			Wrap(err)
	}

	return file, nil
}
