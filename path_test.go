package filevalue

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestSanitizeKeepsCleanNames(t *testing.T) {
	cases := []string{
		"settings.json",
		"api_index-v2",
		"snapshot",
		"a.b.c",
	}

	for _, name := range cases {
		if got := Sanitize(name); got != name {
			t.Fatalf("Expected clean name %q to pass through, got %q", name, got)
		}
	}
}

func TestSanitizeStripsUnsafeRunes(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
	}{
		{"region/us-east-1", "regionus-east-1-"},
		{"a b\tc", "abc-"},
		{`C:\cache\value`, "Ccachevalue-"},
		{"nulls\x00here", "nullshere-"},
	}

	for _, tc := range cases {
		got := Sanitize(tc.name)
		if !strings.HasPrefix(got, tc.prefix) {
			t.Fatalf("Expected %q to sanitize with prefix %q, got %q", tc.name, tc.prefix, got)
		}
		suffix := strings.TrimPrefix(got, tc.prefix)
		if len(suffix) != 16 {
			t.Fatalf("Expected a 16-hex suffix for %q, got %q", tc.name, suffix)
		}
		if got != Sanitize(tc.name) {
			t.Fatalf("Expected deterministic sanitization for %q", tc.name)
		}
	}
}

func TestSanitizeDistinguishesMangledNames(t *testing.T) {
	// "a/b" collapses to "ab" after stripping; the digest suffix keeps it
	// distinct from a genuine "ab".
	if Sanitize("a/b") == Sanitize("ab") {
		t.Fatal("Expected distinct names for a/b and ab")
	}
	if Sanitize("a/b") == Sanitize("a b") {
		t.Fatal("Expected distinct names for a/b and a b")
	}
}

func TestSanitizeDotOnlyNames(t *testing.T) {
	for _, name := range []string{".", "..", "..."} {
		got := Sanitize(name)
		if strings.Contains(got, ".") {
			t.Fatalf("Expected no dots in sanitized %q, got %q", name, got)
		}
		if len(got) != 16 {
			t.Fatalf("Expected a bare 16-hex name for %q, got %q", name, got)
		}
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	if _, err := New[int](""); err == nil {
		t.Fatal("Expected an error for an empty name")
	}
}

func TestPathIsDeterministic(t *testing.T) {
	memFs := afero.NewMemMapFs()

	a, err := New[int]("counter", WithBaseDir("/data"), WithFs(memFs))
	if err != nil {
		t.Fatalf("Failed to create value: %v", err)
	}
	b, err := New[int]("counter", WithBaseDir("/data"), WithFs(memFs))
	if err != nil {
		t.Fatalf("Failed to create value: %v", err)
	}

	if a.Path() != b.Path() {
		t.Fatalf("Expected identical paths, got %q and %q", a.Path(), b.Path())
	}
	if want := filepath.Join("/data", "counter"); a.Path() != want {
		t.Fatalf("Expected path %q, got %q", want, a.Path())
	}
}

func TestNewDefaultBaseDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("default base directory resolution is exercised on linux only")
	}
	t.Setenv("XDG_CACHE_HOME", "/xdg-cache")

	val, err := New[int]("counter", WithFs(afero.NewMemMapFs()))
	if err != nil {
		t.Fatalf("Failed to create value: %v", err)
	}
	if want := filepath.Join("/xdg-cache", "counter"); val.Path() != want {
		t.Fatalf("Expected path %q, got %q", want, val.Path())
	}
}

func TestNewFailsWithoutBaseDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("default base directory resolution is exercised on linux only")
	}
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")

	if _, err := New[int]("counter", WithFs(afero.NewMemMapFs())); err == nil {
		t.Fatal("Expected an error when no base directory can be determined")
	}
}
