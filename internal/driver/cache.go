package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"warlang/internal/diag"
	"warlang/internal/source"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// DiskCache stores generated Python keyed by the SHA-256 of the source
// content, so an unchanged file skips the whole pipeline. Thread-safe
// for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema     uint16
	SourcePath string
	Output     string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "build")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

func (c *DiskCache) put(key [32]byte, payload *cachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

func (c *DiskCache) get(key [32]byte) (*cachePayload, bool) {
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

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// CompileCached is Compile with a disk cache in front. Only clean
// builds are cached: a unit with any diagnostic, even a warning, is
// recompiled every time so its diagnostics replay. A nil cache
// degrades to a plain Compile.
func CompileCached(cache *DiskCache, path string, opts Options) (*Result, bool, error) {
	if cache == nil || opts.CheckOnly {
		res, err := Compile(path, opts)
		return res, false, err
	}

	fsx := source.NewFileSet()
	fileID, err := fsx.Load(path)
	if err != nil {
		// fall through to Compile, which turns the failure into an IO
		// diagnostic
		res, cerr := Compile(path, opts)
		return res, false, cerr
	}
	file := fsx.Get(fileID)

	if payload, ok := cache.get(file.Hash); ok {
		res := &Result{
			FileSet: fsx,
			File:    file,
			Bag:     diag.NewBag(maxFor(opts)),
			Stage:   StageEmit,
			Output:  payload.Output,
		}
		return res, true, nil
	}

	res, err := compileFile(fsx, file, maxFor(opts), opts)
	if err != nil {
		return res, false, err
	}
	if res.Stage == StageEmit && res.Bag.Len() == 0 {
		// best effort: a failed write only costs the next run a rebuild
		_ = cache.put(file.Hash, &cachePayload{
			Schema:     cacheSchemaVersion,
			SourcePath: path,
			Output:     res.Output,
		})
	}
	return res, false, nil
}
