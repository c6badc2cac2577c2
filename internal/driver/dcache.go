package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"cfgpp/internal/codec"
	"cfgpp/internal/parser"
	"cfgpp/internal/project"
	"cfgpp/internal/value"
)

// Current schema version - increment when diskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores parsed value trees on disk, keyed by a digest of the
// root file's content and the parse options. Thread-safe for concurrent
// access.
//
// The key covers only the root file: an edit to an included file does not
// invalidate a cached tree. Callers that rely on includes should keep the
// cache disabled or drop it after editing.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskPayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16
	Tree   []byte // msgpack wire form of the value tree
}

// OpenDiskCache initializes a disk cache at dir, or at the standard user
// cache location when dir is empty.
func OpenDiskCache(app, dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey digests a file's content together with the parse options that
// shape the resulting tree.
func CacheKey(content []byte, opts parser.Options) project.Digest {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "|env=%t|inc=%t|depth=%d", opts.ExpandEnvVars, opts.ProcessIncludes, opts.MaxIncludeDepth)
	for _, p := range opts.IncludePaths {
		fmt.Fprintf(h, "|path=%s", p)
	}
	var key project.Digest
	copy(key[:], h.Sum(nil))
	return key
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "trees", hexKey+".mp")
}

// Put serializes and writes a value tree to the disk cache.
func (c *DiskCache) Put(key project.Digest, v *value.Value) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	tree, err := codec.ToMsgpack(v)
	if err != nil {
		return err
	}

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
	if err := enc.Encode(&diskPayload{Schema: diskCacheSchemaVersion, Tree: tree}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads a cached value tree. The boolean reports whether the key was
// present with a compatible payload version.
func (c *DiskCache) Get(key project.Digest) (*value.Value, bool, error) {
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
	v, err := codec.FromMsgpack(payload.Tree)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
