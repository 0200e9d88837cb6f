package filevalue

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// NowFunc defines a function that returns the current time.
type NowFunc func() time.Time

// Value is a file-backed cache for a single value of type T.
// It reads the backing file lazily on first access, rewrites it whenever a
// new value is inserted or recomputed, and can treat the file as stale once
// its modification time exceeds a configurable age.
//
// A Value is not safe for concurrent use. The design assumes exactly one
// instance (and no external writer) accesses a given path during the
// lifetime of the program.
type Value[T any] struct {
	path        string   // Resolved location of the backing file
	fs          afero.Fs // Filesystem interface
	now         NowFunc  // Time function used for freshness checks
	codec       Codec    // Serialization of T to and from the backing file
	maxAge      time.Duration
	exclusive   bool // If true, Insert refuses to overwrite an existing file
	invalidated bool // Set by Invalidate/Remove, cleared on repopulation

	val   *T // In-memory copy; nil means not yet loaded or invalidated
	stats Stats
}

// New creates a file-backed value named name.
// The backing file lives at sanitize(name) under the directory given with
// WithBaseDir, or under the platform per-user cache directory by default.
// New fails when no base directory can be determined. It performs no other
// filesystem access; the backing file does not need to exist yet.
func New[T any](name string, options ...Option) (*Value[T], error) {
	if name == "" {
		return nil, errors.New("name must not be empty")
	}

	cfg := config{
		fs:    afero.NewOsFs(), // Default to OS filesystem
		now:   time.Now,        // Default to stdlib time.Now
		codec: JSONCodec{},     // Default to JSON documents
	}

	// Apply options
	for _, option := range options {
		option(&cfg)
	}

	dir := cfg.baseDir
	if dir == "" {
		userDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve a base directory: %w", err)
		}
		dir = userDir
	}

	return &Value[T]{
		path:      filepath.Join(dir, Sanitize(name)),
		fs:        cfg.fs,
		now:       cfg.now,
		codec:     cfg.codec,
		maxAge:    cfg.maxAge,
		exclusive: cfg.exclusive,
	}, nil
}

// Path returns the resolved location of the backing file.
// It is pure: no filesystem access, no error.
func (v *Value[T]) Path() string {
	return v.path
}

// SetMaxAge configures the staleness threshold. From this point on, a
// previously loaded value is treated as stale once the backing file is at
// least d old. A zero (or negative) d clears the threshold, restoring the
// default read-once behavior.
func (v *Value[T]) SetMaxAge(d time.Duration) {
	v.maxAge = d
}

// Get returns the current value, reloading it from the backing file when no
// in-memory value is present or the file is stale.
// The boolean reports whether a value exists; a missing backing file is not
// an error. A *DecodeError is returned when the file cannot be parsed as T,
// and any other file-access failure is returned as an I/O error; in both
// cases the in-memory value is left unchanged. Get never writes to disk.
func (v *Value[T]) Get() (T, bool, error) {
	var zero T

	if v.val == nil || v.dirty() {
		if v.val != nil {
			v.stats.StaleReloads++
		}
		val, ok, err := v.read()
		if err != nil {
			// A failed read must not clear a previously-good value.
			return zero, false, err
		}
		if ok {
			v.stats.Loads++
			v.val = &val
		} else {
			v.val = nil
		}
		v.invalidated = false
	} else {
		v.stats.Hits++
	}

	if v.val == nil {
		return zero, false, nil
	}
	return *v.val, true, nil
}

// GetOrInsert returns the current value, seeding it with def when a
// recomputation is needed. See GetOrInsertWith for the full contract.
func (v *Value[T]) GetOrInsert(def T) (T, error) {
	return v.GetOrInsertWith(func() T { return def })
}

// GetOrInsertWith returns the current value, calling fn to recompute it when
// needed. fn is evaluated at most once, and only when its result is actually
// used:
//   - If the value has been invalidated or the backing file is stale, fn is
//     called, its result written through to the file, and returned.
//   - Otherwise, if no in-memory value exists, the file is read. The file
//     must exist here: staleness already covers the missing-file case when a
//     threshold is set, so a missing file indicates a broken cache cycle and
//     is reported as ErrMissing rather than silently recomputed.
//   - Otherwise the in-memory value is returned with no file access beyond
//     the freshness check.
func (v *Value[T]) GetOrInsertWith(fn func() T) (T, error) {
	var zero T

	if v.dirty() {
		// Recompute even if a value is already in memory.
		v.stats.StaleReloads++
		return v.Insert(fn())
	}

	if v.val == nil {
		val, ok, err := v.read()
		if err != nil {
			return zero, err
		}
		if !ok {
			return zero, fmt.Errorf("%w: %s", ErrMissing, v.path)
		}
		v.stats.Loads++
		v.val = &val
		v.invalidated = false
		return val, nil
	}

	v.stats.Hits++
	return *v.val, nil
}

// Insert writes val to the backing file and stores it as the new in-memory
// value, creating parent directories as needed. By default an existing file
// is replaced via a temp-file-and-rename; with WithExclusiveWrite an
// existing file makes Insert fail with ErrExists instead. On a write failure
// the in-memory value is left unchanged.
func (v *Value[T]) Insert(val T) (T, error) {
	var zero T

	if err := v.write(val, v.exclusive); err != nil {
		return zero, err
	}

	v.stats.Stores++
	v.val = &val
	v.invalidated = false
	return val, nil
}

// Invalidate drops the in-memory value without touching the backing file and
// marks the value for recomputation: the next GetOrInsert or GetOrInsertWith
// call recomputes even when the file is fresh, and the next Get reloads from
// the file. It returns the dropped value, if any.
func (v *Value[T]) Invalidate() (T, bool) {
	v.invalidated = true

	var zero T
	if v.val == nil {
		return zero, false
	}
	val := *v.val
	v.val = nil
	return val, true
}

// Flush rewrites the current in-memory value to the backing file. It is a
// no-op when no value is present. Flush always replaces the file, even under
// WithExclusiveWrite: it re-persists a value this instance already owns.
func (v *Value[T]) Flush() error {
	if v.val == nil {
		return nil
	}
	if err := v.write(*v.val, false); err != nil {
		return err
	}
	v.stats.Stores++
	return nil
}

// Remove deletes the backing file and drops the in-memory value, forcing a
// recomputation on the next GetOrInsert or GetOrInsertWith call. A missing
// file is not an error.
func (v *Value[T]) Remove() error {
	if err := v.fs.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", v.path, err)
	}
	v.val = nil
	v.invalidated = true
	return nil
}

// read loads the value from the backing file.
// A missing file yields (zero, false, nil). Malformed content yields a
// *DecodeError; any other failure is an I/O error.
func (v *Value[T]) read() (T, bool, error) {
	var zero T

	data, err := afero.ReadFile(v.fs, v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("failed to read %s: %w", v.path, err)
	}

	var val T
	if err := v.codec.Unmarshal(data, &val); err != nil {
		return zero, false, &DecodeError{Path: v.path, Err: err}
	}
	return val, true, nil
}

// write encodes val and persists it at the backing path, creating parent
// directories as needed. When exclusive is set, an existing file is a
// conflict; otherwise the file is replaced by writing a sibling temp file
// and renaming it over the target.
func (v *Value[T]) write(val T, exclusive bool) error {
	data, err := v.codec.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", v.path, err)
	}

	if exclusive {
		exists, err := afero.Exists(v.fs, v.path)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", v.path, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrExists, v.path)
		}
	}

	if err := v.fs.MkdirAll(filepath.Dir(v.path), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", v.path, err)
	}

	tmp := v.path + ".tmp"
	if err := afero.WriteFile(v.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := v.fs.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace %s: %w", v.path, err)
	}
	if err := v.fs.Rename(tmp, v.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", v.path, err)
	}
	return nil
}

// dirty reports whether the next accessor call must recompute or reload.
func (v *Value[T]) dirty() bool {
	return v.invalidated || v.stale()
}
