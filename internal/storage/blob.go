package storage

import (
	"bytes"
	"io"
)

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}

// PutBytes stores an in-memory blob, e.g. a finished export archive.
func PutBytes(bs BlobStore, key string, data []byte) (string, error) {
	return bs.Put(key, bytes.NewReader(data))
}
