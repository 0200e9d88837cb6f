package filevalue

import (
	"time"

	"github.com/spf13/afero"
)

// config collects the construction parameters shared by every Value,
// independent of its value type.
type config struct {
	baseDir   string
	fs        afero.Fs
	now       NowFunc
	codec     Codec
	maxAge    time.Duration
	exclusive bool
}

// Option defines a function that configures a Value at construction.
type Option func(*config)

// WithBaseDir sets the directory the backing file lives in, instead of the
// platform per-user cache directory.
func WithBaseDir(dir string) Option {
	return func(c *config) {
		c.baseDir = dir
	}
}

// WithFs sets the filesystem implementation used for all file access.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	val, err := filevalue.New[Config]("settings", filevalue.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) Option {
	return func(c *config) {
		c.fs = fs
	}
}

// WithNowFunc sets a custom time function used for freshness checks.
// This is primarily useful for testing with deterministic timestamps.
func WithNowFunc(now NowFunc) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithMaxAge sets the staleness threshold at construction.
// It is equivalent to calling SetMaxAge on the new Value.
func WithMaxAge(d time.Duration) Option {
	return func(c *config) {
		c.maxAge = d
	}
}

// WithCodec sets the serialization used for the backing file.
// The default is JSONCodec.
func WithCodec(codec Codec) Option {
	return func(c *config) {
		c.codec = codec
	}
}

// WithExclusiveWrite makes Insert refuse to overwrite an existing backing
// file, failing with ErrExists instead. The default is to replace the file
// in place on every insert or recomputation.
func WithExclusiveWrite() Option {
	return func(c *config) {
		c.exclusive = true
	}
}
