package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/aconf/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config.yaml")
//
// Flag values are read from the mapping stored under the key name, or from
// the top-level mapping when no such key exists:
//
//	config:
//	  log-level: debug
//	  log_format: text
//	  log-pretty: false
//	  search-path: [/etc/aconf, ./conf]
//
// Keys may spell flag names with hyphens or underscores. Numbers are passed
// to kong as decimal text and sequences as comma-separated lists.
// Command-line flags override config file values.
//
// A file that cannot be parsed is logged and ignored.
func resolve(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var root map[string]any

		err = yaml.UnmarshalContext(ctx, data, &root)
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.String("error", yaml.FormatError(err, false, false)),
			)

			return fileConfig{}, nil
		}

		if sub, ok := root[name].(map[string]any); ok {
			root = sub
		}

		cfg := make(fileConfig, len(root))
		for key, val := range root {
			cfg[key] = flagValue(val)
		}

		return cfg, nil
	}
}

// fileConfig implements [kong.Resolver] for YAML configuration files.
type fileConfig map[string]any

// Validate implements [kong.Resolver].
func (fileConfig) Validate(*kong.Application) error {
	// Unknown keys are ignored.
	return nil
}

// Resolve implements [kong.Resolver].
func (r fileConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level"); YAML keys may use either.
	for _, key := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[key]; ok {
			return value, nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value into a form kong can map onto a
// flag.
func flagValue(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		part := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := flagValue(elem).(string)
			if !ok {
				s = yamlText(elem)
			}

			part = append(part, s)
		}

		return strings.Join(part, ",")
	default:
		return v
	}
}

// yamlText returns the flow-style YAML text of v.
func yamlText(v any) string {
	b, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(b))
}
