// Package blob provides read-only access to the sprite artwork that ships
// alongside the dex dataset. Sprites live outside the relational store, so
// the HTTP layer streams them from a Source: a local directory in
// development, an S3-compatible bucket in production, or memory in tests.
package blob

import (
	"context"
	"io"
)

// Driver identifies a concrete sprite source backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"     // local directory (default, dev)
	DriverS3         Driver = "s3"     // S3 / MinIO compatible
	DriverMemory     Driver = "memory" // in-memory (tests)
)

// Object carries a sprite's contents and the metadata the HTTP layer needs
// to serve it. Callers own the ReadCloser.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Source is the read surface over sprite storage. Open returns a NotFound
// error for keys that do not exist; the caller maps that to its own absent
// semantics.
type Source interface {
	Open(ctx context.Context, key string) (*Object, error)
	Driver() Driver
}
