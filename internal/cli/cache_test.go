package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/ontodot/pkg/cache"
)

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	t.Run("no cache", func(t *testing.T) {
		c, _, err := newCache(context.Background(), cacheFlags{noCache: true})
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		if _, ok := c.(cache.NullCache); !ok {
			t.Errorf("newCache() = %T, want cache.NullCache", c)
		}
	})

	t.Run("file cache", func(t *testing.T) {
		c, keyer, err := newCache(context.Background(), cacheFlags{})
		if err != nil {
			t.Fatalf("newCache() error: %v", err)
		}
		defer c.Close()
		if _, ok := c.(*cache.FileCache); !ok {
			t.Errorf("newCache() = %T, want *cache.FileCache", c)
		}
		if keyer != nil {
			t.Errorf("keyer = %T, want nil (runner default)", keyer)
		}
	})

	t.Run("bad redis url", func(t *testing.T) {
		if _, _, err := newCache(context.Background(), cacheFlags{redisURL: "not a url"}); err == nil {
			t.Error("newCache() with invalid redis URL should fail")
		}
	})
}

func TestCacheClear(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b"} {
		if err := fc.Set(ctx, key, []byte("<svg/>"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	c := New(io.Discard, LogInfo)
	cmd := c.cacheClearCommand()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}

	var files int
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files++
		}
		return nil
	})
	if files != 0 {
		t.Errorf("files after clear = %d, want 0", files)
	}
	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entry still cached after clear")
	}
}
