// Package store persists named containers in a bbolt database.
//
// Each container is kept as its serialized blob under its name in a single
// bucket. Reads run in read-only transactions; Update runs a
// read-modify-write in one write transaction.
package store

import (
	"errors"
	"time"

	"go.etcd.io/bbolt"

	"github.com/cybergodev/container"
)

// ErrNotFound is returned by Get for a name that was never stored
var ErrNotFound = errors.New("container not found")

// Store is a bbolt-backed set of named containers. It is safe for
// concurrent use; the containers it returns are not.
type Store struct {
	db      *bbolt.DB
	bucket  []byte
	timeout time.Duration
	copts   []container.Option
}

// Option customizes a Store
type Option func(*Store)

// WithBucket sets the bucket that holds the containers
func WithBucket(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.bucket = []byte(name)
		}
	}
}

// WithTimeout bounds how long Open waits for the file lock
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// WithContainerOptions sets the options applied to loaded containers
func WithContainerOptions(opts ...container.Option) Option {
	return func(s *Store) { s.copts = opts }
}

// Open opens or creates the database at path
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		bucket:  []byte(container.DefaultBucketName),
		timeout: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: s.timeout})
	if err != nil {
		return nil, storeError("open", "", "failed to open database", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, storeError("open", "", "failed to create bucket", err)
	}
	s.db = db
	return s, nil
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores c under name, replacing any previous value
func (s *Store) Put(name string, c *container.Container) error {
	if name == "" {
		return storeError("put", name, "name cannot be empty", container.ErrBadArgument)
	}
	blob, err := c.Serialize()
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(name), blob)
	})
	if err != nil {
		return storeError("put", name, "write failed", err)
	}
	return nil
}

// Get loads the container stored under name
func (s *Store) Get(name string) (*container.Container, error) {
	var blob []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(name)); v != nil {
			blob = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("get", name, "read failed", err)
	}
	if blob == nil {
		return nil, storeError("get", name, "no container stored under this name", ErrNotFound)
	}
	return container.Unserialize(blob, s.copts...)
}

// Has reports whether a container is stored under name
func (s *Store) Has(name string) (bool, error) {
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(s.bucket).Get([]byte(name)) != nil
		return nil
	})
	if err != nil {
		return false, storeError("has", name, "read failed", err)
	}
	return found, nil
}

// Delete removes name; a missing name is not an error
func (s *Store) Delete(name string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(name))
	})
	if err != nil {
		return storeError("delete", name, "delete failed", err)
	}
	return nil
}

// Names lists the stored names in byte order
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, storeError("names", "", "read failed", err)
	}
	return names, nil
}

// Update loads name (an empty container when missing), applies fn and
// stores the result, all in one transaction. An error from fn aborts the
// write.
func (s *Store) Update(name string, fn func(c *container.Container) error) error {
	if name == "" {
		return storeError("update", name, "name cannot be empty", container.ErrBadArgument)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)

		var c *container.Container
		var err error
		if blob := b.Get([]byte(name)); blob != nil {
			c, err = container.Unserialize(blob, s.copts...)
		} else {
			c, err = container.New(nil, s.copts...)
		}
		if err != nil {
			return err
		}

		if err := fn(c); err != nil {
			return err
		}

		out, err := c.Serialize()
		if err != nil {
			return err
		}
		return b.Put([]byte(name), out)
	})
}

func storeError(op, name, message string, err error) error {
	return &container.ContainerError{
		Op:      "store_" + op,
		Path:    name,
		Message: message,
		Err:     err,
	}
}
