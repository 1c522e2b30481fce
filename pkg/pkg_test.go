package pkg

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "aconf"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	if Description == "" {
		t.Error("Expected Description to be set")
	}
}

func TestVersion(t *testing.T) {
	// The test binary runs in the package directory.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := string(buf); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}

	if strings.TrimSpace(Version) == "" {
		t.Error("Expected Version to be non-empty")
	}
}

func TestAuthor(t *testing.T) {
	expectedName := "ardnew"
	expectedEmail := "andrew@ardnew.com"

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == expectedName && a.Email == expectedEmail
	}) {
		t.Errorf("Expected Author to contain %q, %q", expectedName, expectedEmail)
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestDirs_EndWithPrefix(t *testing.T) {
	for name, dir := range map[string]string{
		"config": ConfigDir(),
		"cache":  CacheDir(),
	} {
		if filepath.Base(dir) != Prefix() {
			t.Errorf("%s dir %q does not end with %q", name, dir, Prefix())
		}
	}
}

func TestEnvVar(t *testing.T) {
	got := EnvVar("PATH")

	if !strings.HasSuffix(got, "_PATH") {
		t.Errorf("EnvVar(PATH) = %q, want suffix _PATH", got)
	}

	if strings.ToUpper(got) != got {
		t.Errorf("EnvVar(PATH) = %q, want upper case", got)
	}

	if strings.ContainsAny(got, ".-") {
		t.Errorf("EnvVar(PATH) = %q contains separator characters", got)
	}
}

func TestConfigPath(t *testing.T) {
	if got := ConfigPath(); got != ConfigDir() {
		t.Errorf("ConfigPath() = %q, want %q", got, ConfigDir())
	}

	if got, want := ConfigPath("config.yaml"), filepath.Join(ConfigDir(), "config.yaml"); got != want {
		t.Errorf("ConfigPath(config.yaml) = %q, want %q", got, want)
	}
}
