// Package cli contains the command line interface for aconf.
//
// # Usage
//
// The default command translates YAML input files (or standard input) and
// prints the assignment statements:
//
//	aconf base.yaml app.yaml
//	aconf eval base.yaml @[NUM]
//	aconf resolve --format=json base.yaml
//	aconf repl base.yaml
//	aconf init
//
// Relative input files not found in the working directory are looked up in
// the directories given with --search-path, then in those listed in
// $ACONF_PATH.
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory, under the "config" key:
//
//	config:
//	  log-level: debug
//	  search-path: [/etc/aconf]
//
// A config.json file with the same flag names is also read. Command-line
// flags take precedence. The init command writes the current flag values to
// config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Log messages are written to standard error.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o aconf .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/aconf/pprof)
package cli
