package driver

import (
	"context"
	"testing"

	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/source"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("flint-test")
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := testCache(t)
	key := cacheKey([32]byte{1, 2, 3}, config.Default())

	in := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Findings: 2,
		Diags: []cachedDiag{
			{Code: uint16(diag.StyleUpcaseNull), Severity: uint8(diag.SevAdvice), StartByte: 4, EndByte: 8, Message: "use nullptr"},
			{Code: uint16(diag.StyleThrowNew), Severity: uint8(diag.SevWarning), StartByte: 10, EndByte: 13, Message: "throw by value"},
		},
	}
	if err := cache.Store(key, in); err != nil {
		t.Fatal(err)
	}

	out, ok := cache.Load(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if out.Findings != in.Findings || len(out.Diags) != len(in.Diags) {
		t.Fatalf("payload mismatch: %+v", out)
	}
	if out.Diags[0] != in.Diags[0] || out.Diags[1] != in.Diags[1] {
		t.Errorf("diags mismatch: %+v", out.Diags)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache := testCache(t)
	if _, ok := cache.Load(cacheKey([32]byte{9}, config.Default())); ok {
		t.Fatal("unexpected hit on empty cache")
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache := testCache(t)
	key := cacheKey([32]byte{7}, config.Default())
	if err := cache.Store(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Load(key); ok {
		t.Fatal("schema mismatch must read as a miss")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache := testCache(t)
	key := cacheKey([32]byte{5}, config.Default())
	if err := cache.Store(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Load(key); ok {
		t.Fatal("expected miss after DropAll")
	}
}

func TestCacheKeyConfigSensitive(t *testing.T) {
	content := [32]byte{1}
	base := config.Default()
	altered := config.Default()
	altered.Disabled = []string{"upcase-null"}

	if cacheKey(content, base) == cacheKey(content, altered) {
		t.Fatal("config change must change the cache key")
	}
	if cacheKey(content, base) != cacheKey(content, base) {
		t.Fatal("cache key must be deterministic")
	}
	if cacheKey([32]byte{2}, base) == cacheKey(content, base) {
		t.Fatal("content change must change the cache key")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	if err := cache.Store([32]byte{}, &DiskPayload{}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Load([32]byte{}); ok {
		t.Fatal("nil cache must always miss")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
}

func TestLintFileUsesCache(t *testing.T) {
	cache := testCache(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "c.cpp", "void f() { throw new Bad(); }\n")
	opts := Options{
		Config:         config.Default(),
		MaxDiagnostics: 50,
		Cache:          cache,
	}

	first, err := LintFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first run must not be cached")
	}

	// fresh FileSet, same content: replay from disk
	second, err := LintFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second run must be cached")
	}
	if second.Findings != first.Findings {
		t.Errorf("cached findings = %d, want %d", second.Findings, first.Findings)
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Errorf("cached bag len = %d, want %d", second.Bag.Len(), first.Bag.Len())
	}
	fd := first.Bag.Items()[0]
	sd := second.Bag.Items()[0]
	if fd.Code != sd.Code || fd.Primary.Start != sd.Primary.Start || fd.Primary.End != sd.Primary.End {
		t.Errorf("replayed diagnostic differs: %+v vs %+v", fd, sd)
	}
	if sd.Primary.File != second.FileID {
		t.Error("replayed span must use the fresh FileID")
	}
}

func TestLintFileCacheInvalidatedByConfig(t *testing.T) {
	cache := testCache(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "d.cpp", "int* p = NULL;\n")

	opts := Options{Config: config.Default(), MaxDiagnostics: 50, Cache: cache}
	if _, err := LintFile(context.Background(), source.NewFileSet(), path, opts); err != nil {
		t.Fatal(err)
	}

	opts.Config.Disabled = []string{"upcase-null"}
	res, err := LintFile(context.Background(), source.NewFileSet(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Fatal("changed config must miss the cache")
	}
	if res.Findings != 0 {
		t.Errorf("findings = %d with check disabled, want 0", res.Findings)
	}
}
