/*
Package filevalue provides a lazily-populated, file-persisted cache for a single typed value.

It is aimed at small long-lived tools that want to memoize an expensive-to-compute
value (a configuration snapshot, a fetched resource, a derived index) across process
restarts without building a database.

# Overview

A Value[T] transparently loads from its backing file on first access, can be marked
stale after a configurable age, and rewrites the file whenever a new value is
computed or supplied. Freshness is evaluated purely from filesystem metadata of the
backing file, so external deletions and touches are reflected on the next check.

# Storage Layout

Each value is one file at sanitize(name) under either a caller-supplied directory
or the platform per-user cache directory. Parent directories are created on demand.
The file holds a single JSON document encoding the value exactly, with no envelope,
metadata header, or checksum. The serialization is pluggable via the Codec option.

# Basic Usage

Creating a value:

	val, err := filevalue.New[Config]("settings.json")
	if err != nil {
	    log.Fatalf("Failed to create value: %v", err)
	}

Reading through the cache:

	cfg, ok, err := val.Get()
	if err != nil {
	    log.Fatalf("Cache error: %v", err)
	}
	if !ok {
	    // No backing file yet and nothing inserted.
	}

Memoizing an expensive computation, recomputed once the file is an hour old:

	val.SetMaxAge(time.Hour)
	cfg, err := val.GetOrInsertWith(fetchConfig)

The factory passed to GetOrInsertWith is evaluated at most once, and only when a
recomputation is actually needed; the fast path performs no file access beyond
the freshness check.

# Staleness

With no threshold configured, the backing file is read at most once for the
lifetime of the instance. With a threshold, the file is treated as stale once its
modification time is at least that old, and also whenever its modification time
cannot be determined: a missing file must trigger recomputation. Invalidate drops
the in-memory value without touching the file and forces the next accessor call
to reload or recompute.

# Write Policy

Insert and recomputation replace the backing file in place, by writing a sibling
temp file and renaming it over the target. For callers that want a strict
single-write cycle instead, WithExclusiveWrite makes Insert fail with ErrExists
when a file is already present, signaling a cache cycle that was never
invalidated.

# Error Handling

Two recoverable error kinds are surfaced: I/O failures on the backing file, and
*DecodeError when the file exists but cannot be parsed. A missing file on Get is
not an error, it is a valid "no value yet" outcome. A failed read never clears a
previously-good in-memory value. No error is retried internally and none is fatal;
all are returned to the caller to decide.

# Concurrency

A Value is synchronous, blocking, and not safe for concurrent use. Every accessor
performs at most one file read and/or write before returning, and no file handle
is held across calls. The design assumes exactly one instance, and no external
writer, accesses a given path during the lifetime of the program.
*/
package filevalue
