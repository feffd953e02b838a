package ports

import "context"

// BlobStore is a key-addressed content store. Keys are opaque flat names;
// thumbnail derivatives live next to their source at "<key>_<width>".
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
