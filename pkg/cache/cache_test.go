package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get() = %q, %v, want miss", data, hit)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get(missing) hit, want miss")
	}

	if err := c.Set(ctx, "k", []byte("svg"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "svg" {
		t.Errorf("Get(k) = %q, %v, %v, want svg hit", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete hit, want miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry hit, want miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}
}

func TestFileCache_Corrupt(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = %v, %v, want miss without error", hit, err)
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear, want 0", len(entries))
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}

	j1, err := HashJSON(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if j1 != Hash([]byte(`{"a":1}`)) {
		t.Errorf("HashJSON() = %s, want hash of compact JSON", j1)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	r1 := k.RouteKey("plan", RouteKeyOpts{Start: "0", Visit: []string{"1"}})
	r2 := k.RouteKey("plan", RouteKeyOpts{Start: "0", Visit: []string{"2"}})
	if r1 == r2 {
		t.Error("different waypoints should produce different keys")
	}
	if !strings.HasPrefix(r1, "route:") {
		t.Errorf("RouteKey() = %s, want route: prefix", r1)
	}
	if r1 != k.RouteKey("plan", RouteKeyOpts{Start: "0", Visit: []string{"1"}}) {
		t.Error("RouteKey should be deterministic")
	}

	a1 := k.ArtifactKey("plan", ArtifactKeyOpts{Format: "svg"})
	a2 := k.ArtifactKey("plan", ArtifactKeyOpts{Format: "dot"})
	if a1 == a2 {
		t.Error("different formats should produce different keys")
	}
	if k.ArtifactKey("other", ArtifactKeyOpts{Format: "svg"}) == a1 {
		t.Error("different plans should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	tests := []struct {
		name   string
		inner  Keyer
		prefix string
		want   string
	}{
		{"with colon", NewDefaultKeyer(), "hallway:", "hallway:route:"},
		{"colon added", NewDefaultKeyer(), "hallway", "hallway:route:"},
		{"nil inner", nil, "p:", "p:route:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewScopedKeyer(tt.inner, tt.prefix).RouteKey("h", RouteKeyOpts{})
			if !strings.HasPrefix(key, tt.want) {
				t.Errorf("RouteKey() = %s, want prefix %s", key, tt.want)
			}
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	defer func(d time.Duration) { retryDelay = d }(retryDelay)
	retryDelay = time.Millisecond
	ctx := context.Background()
	errFlaky := errors.New("flaky")

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(errFlaky)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retryable: err = %v, calls = %d, want nil, 2", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return errFlaky
	})
	if err != errFlaky || calls != 1 {
		t.Errorf("non-retryable: err = %v, calls = %d, want flaky, 1", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(errFlaky)
	})
	if !errors.Is(err, errFlaky) || calls != 3 {
		t.Errorf("exhausted: err = %v, calls = %d, want flaky, 3", err, calls)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(ErrUnavailable)
	if !IsRetryable(err) {
		t.Error("IsRetryable() = false, want true")
	}
	if err.Error() != ErrUnavailable.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), ErrUnavailable.Error())
	}
	if IsRetryable(ErrUnavailable) {
		t.Error("IsRetryable(unwrapped) = true, want false")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisCache(ctx, "127.0.0.1:1")
	if err == nil {
		t.Fatal("NewRedisCache() error = nil, want error")
	}
}
