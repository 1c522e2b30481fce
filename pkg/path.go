package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// DirMode is the permission mode of directories created by [MkdirAll].
const DirMode os.FileMode = 0o700

// prefixRules rewrite the executable's base name into [Prefix].
//
//nolint:gochecknoglobals
var prefixRules = []struct {
	rex *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`^__debug_bin\d+$`), Name}, // default output from dlv
	{regexp.MustCompile(`^\.+`), ""},               // leading dot(s)
}

// Prefix returns the base name of the executable file, used to name the
// configuration and cache directories and to prefix environment variables.
//
// The dlv debugger's default output name is replaced with [Name], and
// leading dots are removed.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		for _, rule := range prefixRules {
			id = rule.rex.ReplaceAllString(id, rule.rep)
		}

		return id
	},
)

// userDir returns the [Prefix] subdirectory of the directory returned by
// base, falling back to ~/home and then the working directory.
func userDir(base func() (string, error), home string) string {
	dir, err := base()
	if err != nil {
		if dir, err = os.UserHomeDir(); err == nil {
			dir = filepath.Join(dir, home)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string { return userDir(os.UserConfigDir, ".config") },
)

// CacheDir returns the cache directory path used for transient files such
// as REPL history and profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string { return userDir(os.UserCacheDir, ".cache") },
)

// ConfigPath joins elem to [ConfigDir].
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// MkdirAll creates the configuration and cache directories.
func MkdirAll() error {
	for _, dir := range []string{ConfigDir(), CacheDir()} {
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return err
		}
	}

	return nil
}

// EnvVar returns the name of the environment variable with the given suffix,
// prefixed by the upper-cased [Prefix]. For example, EnvVar("PATH") returns
// "ACONF_PATH" for the default executable name.
func EnvVar(suffix string) string {
	prefix := strings.Map(
		func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z':
				return r - 'a' + 'A'
			case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
				return r
			default:
				return '_'
			}
		},
		Prefix(),
	)

	return prefix + "_" + suffix
}
