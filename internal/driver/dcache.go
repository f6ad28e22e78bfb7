package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/source"
)

// Increment when the DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest = [32]byte

// DiskCache stores per-file lint results keyed by content and config hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedDiag is one finding stripped to what survives a round trip: byte
// offsets instead of spans, since the FileID differs between runs.
type cachedDiag struct {
	Code      uint16
	Severity  uint8
	StartByte uint32
	EndByte   uint32
	Message   string
}

// DiskPayload is the cached outcome of linting one file.
type DiskPayload struct {
	Schema   uint16
	Findings int
	Diags    []cachedDiag
}

// OpenDiskCache initializes the cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey mixes the file content hash with the config fingerprint, so a
// config change invalidates every cached entry.
func cacheKey(contentHash Digest, cfg config.Config) Digest {
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write([]byte(cfg.Hash()))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Store serializes and writes a payload, atomically via temp file + rename.
func (c *DiskCache) Store(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Load reads a payload; a miss, a schema mismatch, or a corrupt entry all
// come back as ok=false.
func (c *DiskCache) Load(key Digest) (*DiskPayload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// buildPayload converts a sorted bag into its cacheable form.
func buildPayload(bag *diag.Bag, findings int) *DiskPayload {
	items := bag.Items()
	payload := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Findings: findings,
		Diags:    make([]cachedDiag, len(items)),
	}
	for i, d := range items {
		payload.Diags[i] = cachedDiag{
			Code:      uint16(d.Code),
			Severity:  uint8(d.Severity),
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
			Message:   d.Message,
		}
	}
	return payload
}

// replayPayload re-materializes cached findings against a fresh FileID.
func replayPayload(payload *DiskPayload, id source.FileID, bag *diag.Bag) {
	for _, cd := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: id, Start: cd.StartByte, End: cd.EndByte},
		})
	}
}
