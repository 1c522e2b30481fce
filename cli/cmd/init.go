package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/aconf/log"
	"github.com/ardnew/aconf/profile"
)

// defaultConfigIndent is the YAML indent of the generated configuration
// file.
const defaultConfigIndent = 2

// ignoredFlags are flag name prefixes never written to the configuration
// file.
var ignoredFlags = []string{"help", "version", profile.Tag}

// Init writes the current flag values to the configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath, ok := kongVar(ctx, ConfigIdentifier)
	if !ok {
		panic("internal error: configuration file path undefined")
	}

	fail := ErrWriteConfig.With(slog.String("file", confPath))

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return fail.With(slog.Bool("exists", true)).Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalWithOptions(
		i.buildConfig(ctx),
		yaml.Indent(defaultConfigIndent),
	)
	if err != nil {
		return fail.Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), 0o755); err != nil {
		return fail.Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o644); err != nil {
		return fail.Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildConfig returns the configuration document: the set flag values,
// keyed by flag name, under the configuration namespace.
func (i *Init) buildConfig(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)

	namespace, ok := kongVar(ctx, NamespaceIdentifier)
	if !ok {
		namespace = "config"
	}

	flags := yaml.MapSlice{}

	if ktx != nil {
		for _, flag := range ktx.Model.Flags {
			if flag.Hidden || slices.ContainsFunc(ignoredFlags, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
				continue
			}

			if v, ok := configValue(ktx.FlagValue(flag)); ok {
				flags = append(flags, yaml.MapItem{Key: flag.Name, Value: v})
			}
		}
	}

	return yaml.MapSlice{{Key: namespace, Value: flags}}
}

// configValue returns the YAML value of a flag, or false if the flag is
// unset or empty.
func configValue(val any) (any, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false

	case string:
		return v, v != ""

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, true
	}

	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Slice {
		return val, rv.Len() > 0
	}

	return fmt.Sprint(val), true
}
