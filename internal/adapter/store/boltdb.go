package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"gasplit/internal/domain"
)

var bucketRuns = []byte("runs")

// BoltStore persists split-run history in a bbolt database. Keys are
// monotonically increasing sequence numbers, so iteration order is
// chronological.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRuns); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketRuns, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) PutRun(rec domain.RunRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRuns)

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("run-%06d", seq)
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, data)
	})
}

func (s *BoltStore) ListRuns() ([]domain.RunRecord, error) {
	var runs []domain.RunRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(k, v []byte) error {
			var rec domain.RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			runs = append(runs, rec)
			return nil
		})
	})
	return runs, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
