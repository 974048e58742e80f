package storage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entry is the gorm model backing PostgresStore, one row per document.
type entry struct {
	Bucket string `gorm:"primaryKey;size:255"`
	Key    string `gorm:"primaryKey;size:255"`
	Seq    uint64 `gorm:"autoIncrement;uniqueIndex"`
	Etag   string `gorm:"size:64"`
	Value  []byte `gorm:"type:bytea"`
}

// PostgresStore keeps all buckets in one entries table. Conditional
// writes take a row lock, so the etag check and the write are atomic.
type PostgresStore struct {
	db *gorm.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to postgres and migrates the entries table.
func NewPostgresStore(host string, port int, user, password, dbname string, maxConns int) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create orm wrapper around db")
	}
	sql, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure DB connection")
	}
	sql.SetMaxIdleConns(3)
	sql.SetMaxOpenConns(maxConns)

	if err := gormDB.AutoMigrate(&entry{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate entries table")
	}
	return &PostgresStore{db: gormDB}, nil
}

func (s *PostgresStore) Get(ctx context.Context, bucket, key string) (Record, error) {
	var e entry
	res := s.db.WithContext(ctx).Where("bucket = ? AND key = ?", bucket, key).First(&e)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return Record{}, ErrNotFound
	}
	if res.Error != nil {
		return Record{}, res.Error
	}
	return Record{Key: e.Key, Etag: e.Etag, Seq: e.Seq, Value: e.Value}, nil
}

func (s *PostgresStore) List(ctx context.Context, bucket string) ([]Record, error) {
	var rows []entry
	res := s.db.WithContext(ctx).Where("bucket = ?", bucket).Order("seq").Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	records := make([]Record, 0, len(rows))
	for _, e := range rows {
		records = append(records, Record{Key: e.Key, Etag: e.Etag, Seq: e.Seq, Value: e.Value})
	}
	return records, nil
}

func (s *PostgresStore) Put(ctx context.Context, bucket, key string, value []byte) (string, error) {
	etag := Etag(value)
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bucket"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"etag", "value"}),
	}).Create(&entry{Bucket: bucket, Key: key, Etag: etag, Value: value})
	if res.Error != nil {
		return "", res.Error
	}
	return etag, nil
}

func (s *PostgresStore) Create(ctx context.Context, bucket, key string, value []byte) (string, error) {
	etag := Etag(value)
	res := s.db.WithContext(ctx).Create(&entry{Bucket: bucket, Key: key, Etag: etag, Value: value})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return "", ErrExists
	}
	if res.Error != nil {
		return "", res.Error
	}
	return etag, nil
}

func (s *PostgresStore) Update(ctx context.Context, bucket, key string, value []byte, etag string) (string, error) {
	newEtag := Etag(value)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e entry
		res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("bucket = ? AND key = ?", bucket, key).First(&e)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if res.Error != nil {
			return res.Error
		}
		if etag != "" && etag != e.Etag {
			return ErrEtagMismatch
		}
		return tx.Model(&entry{}).Where("bucket = ? AND key = ?", bucket, key).
			Updates(map[string]interface{}{"etag": newEtag, "value": value}).Error
	})
	if err != nil {
		return "", err
	}
	return newEtag, nil
}

func (s *PostgresStore) Delete(ctx context.Context, bucket, key, etag string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e entry
		res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("bucket = ? AND key = ?", bucket, key).First(&e)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if res.Error != nil {
			return res.Error
		}
		if etag != "" && etag != e.Etag {
			return ErrEtagMismatch
		}
		return tx.Where("bucket = ? AND key = ?", bucket, key).Delete(&entry{}).Error
	})
}

func (s *PostgresStore) DropBucket(ctx context.Context, bucket string) error {
	return s.db.WithContext(ctx).Where("bucket = ?", bucket).Delete(&entry{}).Error
}

func (s *PostgresStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
