// Package storage provides the versioned document store backing the API.
// Documents live in named buckets and every stored document carries an
// opaque etag derived from its serialized bytes. Conditional writes
// compare that etag and fail on mismatch, which is the only concurrency
// control in the system; nothing here retries on behalf of the caller.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// Buckets used by the API.
const (
	BucketNetworks = "networks"
	BucketPools    = "network_pools"
	BucketVLANs    = "fabric_vlans"
	BucketOwners   = "overlay_owners"
	BucketVnets    = "overlay_vnets"
)

// Sentinel errors returned by stores. Any other error means the backend
// itself failed.
var (
	// ErrNotFound no record under the given key
	ErrNotFound = errors.New("record not found")
	// ErrExists create hit an existing record
	ErrExists = errors.New("record already exists")
	// ErrEtagMismatch conditional write lost against a newer version
	ErrEtagMismatch = errors.New("etag mismatch")
)

// Record is one stored document with its version metadata.
type Record struct {
	Key   string
	Etag  string
	Seq   uint64
	Value json.RawMessage
}

// Store is a bucketed document store with compare-and-write semantics.
// List returns records in creation order. Update and Delete apply their
// etag condition atomically with the write; an empty expected etag makes
// them unconditional (the record still has to exist).
type Store interface {
	Get(ctx context.Context, bucket, key string) (Record, error)
	List(ctx context.Context, bucket string) ([]Record, error)
	Put(ctx context.Context, bucket, key string, value []byte) (string, error)
	Create(ctx context.Context, bucket, key string, value []byte) (string, error)
	Update(ctx context.Context, bucket, key string, value []byte, etag string) (string, error)
	Delete(ctx context.Context, bucket, key, etag string) error
	DropBucket(ctx context.Context, bucket string) error
	Close() error
}

// IPBucket returns the bucket holding the ip records of one network.
func IPBucket(networkUUID string) string {
	return "ips/" + networkUUID
}

// Etag derives the version token of a serialized document.
func Etag(value []byte) string {
	sum := sha256.Sum256(value)
	return hex.EncodeToString(sum[:])
}
