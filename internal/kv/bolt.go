package kv

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// All values live in a single bucket; keys are the entity names.
const boltBucket = "findly"

// BoltBackend stores values in a bbolt database file.
type BoltBackend struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) a bbolt database at path.
func OpenBolt(path string) (*BoltBackend, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Get(key string) ([]byte, bool, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if value != nil {
			// Bolt memory is only valid inside the transaction.
			data = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

func (b *BoltBackend) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), value)
	})
}

func (b *BoltBackend) Delete(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(key))
	})
}

func (b *BoltBackend) Clear() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(boltBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(boltBucket))
		return err
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
