package cache

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a cache entry doesn't exist.
var ErrNotFound = errors.New("cache entry not found")

// Store wraps Badger for cache operations. The database runs in
// in-memory mode: resolved sizes live for the process lifetime and no
// state touches disk.
type Store struct {
	db *badger.DB
}

// OpenStore creates an in-memory cache store.
func OpenStore() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable badger logging.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// get retrieves a cached outcome by path.
func (s *Store) get(path string) (*cachedOutcome, error) {
	key := makeKey(path)
	var entry cachedOutcome

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(entry.decode)
	})

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// put stores a cached outcome.
func (s *Store) put(path string, entry *cachedOutcome) error {
	key := makeKey(path)
	value, err := entry.encode()
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// drop removes every entry.
func (s *Store) drop() error {
	return s.db.DropAll()
}

// countAll tallies cached directories, files, and errors in one scan.
func (s *Store) countAll() (dirs, files, errs int, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var entry cachedOutcome
			if err := it.Item().Value(entry.decode); err != nil {
				return err
			}
			switch {
			case entry.Failed:
				errs++
			case entry.IsDir:
				dirs++
			default:
				files++
			}
		}
		return nil
	})
	return dirs, files, errs, err
}
