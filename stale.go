package filevalue

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// stale reports whether the backing file must be treated as no longer
// authoritative. With no threshold configured the file is never stale, which
// makes read-once the default policy. With a threshold, the file is stale
// when its age meets or exceeds the threshold, and also when its age cannot
// be determined at all: a missing or unreadable file must trigger
// recomputation. A negative age (the file appears modified in the future,
// e.g. after clock skew) counts as indeterminate and is stale too.
func (v *Value[T]) stale() bool {
	if v.maxAge <= 0 {
		return false
	}
	age, err := fileAge(v.fs, v.path, v.now)
	if err != nil {
		return true
	}
	return age < 0 || age >= v.maxAge
}

// Age returns the time since the backing file was last modified.
// It fails when the file is missing or its metadata cannot be read.
func (v *Value[T]) Age() (time.Duration, error) {
	return fileAge(v.fs, v.path, v.now)
}

// fileAge computes the elapsed time since path was last modified, from
// filesystem metadata alone. External touches and deletions are therefore
// visible on the next call.
func fileAge(fs afero.Fs, path string, now NowFunc) (time.Duration, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return now().Sub(fi.ModTime()), nil
}
