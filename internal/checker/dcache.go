package checker

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"idlcheck/internal/idl"
)

// Increment when the diskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is the SHA-256 of a file's raw content. It keys the parse cache,
// so an edited file never matches a stale entry.
type Digest [sha256.Size]byte

// DigestOf hashes raw file content.
func DigestOf(data []byte) Digest {
	return sha256.Sum256(data)
}

// DiskCache stores parsed documents keyed by content digest. A nil
// DiskCache is valid and caches nothing. Thread-safe for concurrent
// access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskPayload struct {
	Schema   uint16
	Document idl.Document
}

// OpenDiskCache initializes a disk cache at dir, creating it if needed.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Keep entries under a subdirectory so the whole cache is easy to
	// inspect and wipe.
	return filepath.Join(c.dir, "docs", hexKey+".mp")
}

// Put serializes a parsed document into the cache.
func (c *DiskCache) Put(key Digest, doc *idl.Document) error {
	if c == nil || doc == nil {
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

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&diskPayload{Schema: diskCacheSchemaVersion, Document: *doc}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads a cached document. The second result is false on a miss or
// on a schema mismatch.
func (c *DiskCache) Get(key Digest) (*idl.Document, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return &payload.Document, true, nil
}

// DropAll wipes the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "docs"))
}
