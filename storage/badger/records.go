package badger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/storage"
)

// recordRepository implements storage.RecordRepository on a Backend.
type recordRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.RecordRepository = (*recordRepository)(nil)

// NewRecordRepository creates a record repository on the given backend.
func NewRecordRepository(backend *Backend) (storage.RecordRepository, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	return &recordRepository{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

func (r *recordRepository) SaveRecordSet(ctx context.Context, name string, kind core.Kind, records []core.Record) (*storage.RecordSetInfo, error) {
	if err := core.ValidateKind(kind); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	data, err := storage.MarshalRecords(records)
	if err != nil {
		return nil, err
	}

	info := &storage.RecordSetInfo{
		Name:        name,
		Kind:        kind,
		Count:       len(records),
		Fingerprint: core.FingerprintFromContent(data),
		InsertedAt:  time.Now().UTC(),
	}

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		existing, err := readInfo(tx, name, kind)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if existing != nil && existing.Fingerprint == info.Fingerprint {
			return storage.ErrDuplicateRecordSet
		}
		if existing != nil {
			r.logger.Info("replacing record set",
				"name", name, "kind", kind.String(),
				"old_count", existing.Count, "new_count", info.Count)
		}

		meta, err := storage.MarshalRecordSetInfo(info)
		if err != nil {
			return err
		}
		if err := tx.Set(makeRecordSetKey(name, kind), data); err != nil {
			return err
		}
		if err := tx.Set(makeRecordSetMetaKey(name, kind), meta); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (r *recordRepository) GetRecordSet(ctx context.Context, name string, kind core.Kind) ([]core.Record, *storage.RecordSetInfo, error) {
	if r.backend.IsClosed() {
		return nil, nil, storage.ErrStorageClosed
	}

	var records []core.Record
	var info *storage.RecordSetInfo

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		info, err = readInfo(tx, name, kind)
		if err != nil {
			return err
		}

		item, err := tx.Get(makeRecordSetKey(name, kind))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			records, err = storage.UnmarshalRecords(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, nil, err
	}

	return records, info, nil
}

func (r *recordRepository) ListRecordSets(ctx context.Context) ([]*storage.RecordSetInfo, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var infos []*storage.RecordSetInfo

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordSetMetaPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				info, err := storage.UnmarshalRecordSetInfo(val)
				if err != nil {
					return err
				}
				infos = append(infos, info)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return infos, nil
}

func (r *recordRepository) DeleteRecordSet(ctx context.Context, name string, kind core.Kind) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := readInfo(tx, name, kind); err != nil {
			return err
		}
		if err := tx.Delete(makeRecordSetKey(name, kind)); err != nil {
			return err
		}
		if err := tx.Delete(makeRecordSetMetaKey(name, kind)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op: the repository owns no resources beyond the shared
// backend, which the caller closes.
func (r *recordRepository) Close() error {
	return nil
}

func readInfo(tx *badger.Txn, name string, kind core.Kind) (*storage.RecordSetInfo, error) {
	item, err := tx.Get(makeRecordSetMetaKey(name, kind))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var info *storage.RecordSetInfo
	err = item.Value(func(val []byte) error {
		info, err = storage.UnmarshalRecordSetInfo(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
