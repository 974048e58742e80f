package storage

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// envelope wraps a document with its version metadata on disk.
type envelope struct {
	Seq   uint64          `json:"seq"`
	Etag  string          `json:"etag"`
	Value json.RawMessage `json:"value"`
}

// BoltStore is a single file Store on top of bbolt. Conditions run inside
// the bolt write transaction, so they are atomic with the write.
type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore opens or creates the database file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0640, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open store at %s", path)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(ctx context.Context, bucket, key string) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrNotFound
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return ErrNotFound
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return errors.Wrapf(err, "corrupt record %s/%s", bucket, key)
		}
		rec = Record{Key: key, Etag: env.Etag, Seq: env.Seq, Value: env.Value}
		return nil
	})
	return rec, err
}

func (s *BoltStore) List(ctx context.Context, bucket string) ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var env envelope
			if err := json.Unmarshal(v, &env); err != nil {
				return errors.Wrapf(err, "corrupt record %s/%s", bucket, string(k))
			}
			records = append(records, Record{Key: string(k), Etag: env.Etag, Seq: env.Seq, Value: env.Value})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Seq < records[j].Seq
	})
	return records, nil
}

func (s *BoltStore) Put(ctx context.Context, bucket, key string, value []byte) (string, error) {
	return s.write(bucket, key, value, func(cur *envelope) error {
		return nil
	})
}

func (s *BoltStore) Create(ctx context.Context, bucket, key string, value []byte) (string, error) {
	return s.write(bucket, key, value, func(cur *envelope) error {
		if cur != nil {
			return ErrExists
		}
		return nil
	})
}

func (s *BoltStore) Update(ctx context.Context, bucket, key string, value []byte, etag string) (string, error) {
	return s.write(bucket, key, value, func(cur *envelope) error {
		if cur == nil {
			return ErrNotFound
		}
		if etag != "" && etag != cur.Etag {
			return ErrEtagMismatch
		}
		return nil
	})
}

func (s *BoltStore) Delete(ctx context.Context, bucket, key, etag string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrNotFound
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return ErrNotFound
		}
		if etag != "" {
			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return errors.Wrapf(err, "corrupt record %s/%s", bucket, key)
			}
			if etag != env.Etag {
				return ErrEtagMismatch
			}
		}
		return b.Delete([]byte(key))
	})
}

func (s *BoltStore) DropBucket(ctx context.Context, bucket string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(bucket))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// write runs check against the current envelope (nil when absent) inside
// the write transaction, then stores the new value. The creation sequence
// of an existing record is preserved.
func (s *BoltStore) write(bucket, key string, value []byte, check func(cur *envelope) error) (string, error) {
	etag := Etag(value)
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return errors.Wrapf(err, "failed to create bucket %s", bucket)
		}

		var cur *envelope
		if raw := b.Get([]byte(key)); raw != nil {
			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return errors.Wrapf(err, "corrupt record %s/%s", bucket, key)
			}
			cur = &env
		}
		if err := check(cur); err != nil {
			return err
		}

		env := envelope{Etag: etag, Value: value}
		if cur != nil {
			env.Seq = cur.Seq
		} else {
			env.Seq, err = b.NextSequence()
			if err != nil {
				return err
			}
		}
		raw, err := json.Marshal(env)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), raw)
	})
	if err != nil {
		return "", err
	}
	return etag, nil
}
