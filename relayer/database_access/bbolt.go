package databaseaccess

import (
	"encoding/binary"
	"fmt"

	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"go.etcd.io/bbolt"
)

var (
	nextUnsyncedBatchIndexBucket = []byte("nextUnsyncedBatchIndex")
)

type BBoltDatabase struct {
	db *bbolt.DB
}

var _ core.Database = (*BBoltDatabase)(nil)

func (bd *BBoltDatabase) Init(filePath string) error {
	db, err := bbolt.Open(filePath, 0660, nil)
	if err != nil {
		return fmt.Errorf("could not open db: %w", err)
	}

	bd.db = db

	return db.Update(func(tx *bbolt.Tx) error {
		for _, bn := range [][]byte{nextUnsyncedBatchIndexBucket} {
			_, err := tx.CreateBucketIfNotExists(bn)
			if err != nil {
				return fmt.Errorf("could not bucket: %s, err: %w", string(bn), err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) Close() error {
	return bd.db.Close()
}

func (bd *BBoltDatabase) SetNextUnsyncedBatchIndex(key string, batchIndex core.BatchIndex) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(nextUnsyncedBatchIndexBucket).Put(
			[]byte(key), binary.BigEndian.AppendUint64(nil, batchIndex)); err != nil {
			return fmt.Errorf("next unsynced batch index write error: %w", err)
		}

		return nil
	})
}

func (bd *BBoltDatabase) GetNextUnsyncedBatchIndex(key string) (*core.BatchIndex, error) {
	var result *core.BatchIndex

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(nextUnsyncedBatchIndexBucket).Get([]byte(key))
		if bytes == nil {
			return nil
		}

		if len(bytes) != 8 {
			return fmt.Errorf("could not decode next unsynced batch index: invalid length %d", len(bytes))
		}

		value := binary.BigEndian.Uint64(bytes)
		result = &value

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
