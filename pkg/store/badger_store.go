package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rzbill/armkit/pkg/log"
)

var _ Store = &BadgerStore{}

// BadgerStore is a Store persisted in a BadgerDB directory.
type BadgerStore struct {
	db     *badger.DB
	path   string
	logger log.Logger

	seqMu   sync.Mutex
	lastSeq int64
}

// NewBadgerStore creates a store. Call Open before use.
func NewBadgerStore(logger log.Logger) *BadgerStore {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &BadgerStore{logger: logger.WithComponent("store")}
}

// Open opens or creates the database in path.
func (s *BadgerStore) Open(path string) error {
	s.path = path

	opts := badger.DefaultOptions(path)
	opts.Logger = &badgerLogAdapter{logger: s.logger}

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open badger db: %w", err)
	}
	s.db = db

	s.logger.Debug("Snapshot store opened", log.Str("path", path))
	return nil
}

func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	s.logger.Debug("Closing snapshot store", log.Str("path", s.path))
	err := s.db.Close()
	s.db = nil
	return err
}

// nextSeq returns a version sequence above both floor and every sequence
// handed out before. It follows t while import times increase.
func (s *BadgerStore) nextSeq(t time.Time, floor int64) int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	seq := t.UnixNano()
	if last := max(s.lastSeq, floor); seq <= last {
		seq = last + 1
	}
	s.lastSeq = seq
	return seq
}

// latestSeq returns the sequence of the newest stored version under prefix,
// or 0 when there is none.
func latestSeq(txn *badger.Txn, prefix []byte) (int64, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.Reverse = true
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	it.Seek(append(append([]byte(nil), prefix...), 0xFF))
	if !it.ValidForPrefix(prefix) {
		return 0, nil
	}
	key := it.Item().Key()
	seq, err := strconv.ParseInt(string(key[len(prefix):]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed version key %q: %w", key, err)
	}
	return seq, nil
}

func (s *BadgerStore) Put(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ID == "" {
		return ErrMissingID
	}
	key, err := MakeKey(rec.ID)
	if err != nil {
		return err
	}

	stored := rec.clone()
	stored.Type, _ = ResourceTypeOf(rec.ID)
	if stored.ImportedAt.IsZero() {
		stored.ImportedAt = time.Now().UTC()
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		floor, err := latestSeq(txn, MakeVersionPrefix(key))
		if err != nil {
			return err
		}
		return txn.Set(MakeVersionKey(key, s.nextSeq(stored.ImportedAt, floor)), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", rec.ID, err)
	}

	s.logger.Debug("Stored resource",
		log.Resource(rec.ID),
		log.Str("type", stored.Type),
		log.Int("bytes", len(stored.Resource)))
	return nil
}

func (s *BadgerStore) Get(ctx context.Context, id string) (*Record, error) {
	key, err := MakeKey(id)
	if err != nil {
		return nil, err
	}

	var rec Record
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", id, err)
	}
	return &rec, nil
}

func (s *BadgerStore) List(ctx context.Context, resourceType string) ([]*Record, error) {
	records, err := s.scan(MakePrefix(resourceType), false)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Listed resources", log.Str("type", resourceType), log.Int("count", len(records)))
	return records, nil
}

func (s *BadgerStore) History(ctx context.Context, id string) ([]*Record, error) {
	key, err := MakeKey(id)
	if err != nil {
		return nil, err
	}
	records, err := s.scan(MakeVersionPrefix(key), true)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return records, nil
}

func (s *BadgerStore) Delete(ctx context.Context, id string) error {
	key, err := MakeKey(id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := MakeVersionPrefix(key)
		var versions [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			versions = append(versions, it.Item().KeyCopy(nil))
		}
		for _, v := range versions {
			if err := txn.Delete(v); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}

	s.logger.Debug("Deleted resource", log.Resource(id))
	return nil
}

func (s *BadgerStore) scan(prefix []byte, reverse bool) ([]*Record, error) {
	var records []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = reverse
		it := txn.NewIterator(opts)
		defer it.Close()

		start := prefix
		if reverse {
			start = append(append([]byte(nil), prefix...), 0xFF)
		}
		for it.Seek(start); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("failed to deserialize record: %w", err)
			}
			records = append(records, &rec)
		}
		return nil
	})
	return records, err
}

// badgerLogAdapter routes BadgerDB's own logging into the store logger.
type badgerLogAdapter struct {
	logger log.Logger
}

func (l *badgerLogAdapter) Errorf(format string, args ...interface{}) {
	l.logger.Errorf("badger: "+format, args...)
}

func (l *badgerLogAdapter) Warningf(format string, args ...interface{}) {
	l.logger.Warnf("badger: "+format, args...)
}

func (l *badgerLogAdapter) Infof(format string, args ...interface{}) {
	l.logger.Debugf("badger: "+format, args...)
}

func (l *badgerLogAdapter) Debugf(format string, args ...interface{}) {
	l.logger.Debugf("badger: "+format, args...)
}
