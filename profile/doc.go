// Package profile starts optional runtime profiling of the aconf command
// using [github.com/pkg/profile].
//
// Profiling support is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without it, [Enabled] is false, [Modes] is empty, and [Profiler.Start]
// returns a handle whose Stop does nothing.
//
// A session is configured with options and stopped when the command
// returns:
//
//	defer profile.New(
//		profile.WithMode("heap"),
//		profile.WithPath(dir),
//	).Start().Stop()
//
// Each mode writes one file named after it (cpu.pprof, mem.pprof, trace.out)
// in the output directory. The command line exposes the same settings as
// --pprof-mode and --pprof-dir, with the directory defaulting to "pprof"
// under the aconf cache directory. Inspect the output with
//
//	go tool pprof ./aconf cpu.pprof
//
// A pprof build also imports [net/http/pprof], which registers its handlers
// on [http.DefaultServeMux] for programs that embed the translator and serve
// HTTP.
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`
