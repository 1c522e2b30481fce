// Package cmd implements the aconf subcommands.
//
// Each command is a kong command struct with a Run(context.Context) method.
// The root command in package cli stores the parsed [kong.Context], the input
// search path, and the standard streams in the context with [WithContext],
// [WithSearchPath], and [WithStreams] before running the selected command.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"

	// NamespaceIdentifier is the kong variable identifier containing the key
	// under which flag defaults are stored in the configuration file.
	NamespaceIdentifier = "namespace"
)
