package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	want := filepath.Join("/home/tester", ".cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	want := filepath.Join("/tmp/custom-cache", appName)
	if dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestConfigPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join("/home/tester", ".config", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	path, err := defaultConfigPath()
	if err != nil {
		t.Fatalf("defaultConfigPath() error: %v", err)
	}
	if !strings.HasPrefix(path, "/tmp/custom-config/"+appName) || filepath.Base(path) != configFileName {
		t.Errorf("defaultConfigPath() = %q", path)
	}
}
