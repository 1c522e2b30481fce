package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aconf/cli/cmd"
	"github.com/ardnew/aconf/pkg"
)

// baseConfig is the base name of the configuration file and the key of the
// flag defaults within it.
const baseConfig = "config"

// CLI is the top-level command-line interface for aconf.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version    kong.VersionFlag `help:"Print version and exit."`
	SearchPath []string         `help:"Directories searched for relative input files, before those in $${searchPathEnv}." placeholder:"DIR" short:"I"`

	Translate cmd.Translate `cmd:"" default:"withargs" help:"Translate YAML into assignment statements"`
	Eval      cmd.Eval      `cmd:""                    help:"Print the values of constants"`
	Resolve   cmd.Resolve   `cmd:""                    help:"Print YAML with constant references resolved"`
	Repl      cmd.Repl      `cmd:""                    help:"Explore constants interactively"`
	Init      cmd.Init      `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the aconf CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdin, os.Stdout, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdin io.Reader,
	stdout io.Writer,
	args ...string,
) error {
	var cli CLI

	if err := pkg.MkdirAll(); err != nil {
		return err
	}

	configFilePath := pkg.ConfigPath(baseConfig + ".yaml")
	searchPathEnv := pkg.EnvVar("PATH")

	vars := kong.Vars{
		cmd.ConfigIdentifier:    configFilePath,
		cmd.CacheIdentifier:     pkg.CacheDir(),
		cmd.NamespaceIdentifier: baseConfig,
		"version":               strings.TrimSpace(pkg.Version),
		"searchPathEnv":         searchPathEnv,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Configure the logger before parsing so that parse errors use it.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, pkg.ConfigPath(baseConfig+".json")),
		kong.Configuration(resolve(ctx, baseConfig), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithStreams(ctx, stdin, stdout)
	ctx = cmd.WithSearchPath(ctx, os.Getenv(searchPathEnv), cli.SearchPath...)

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(&cli)
}
