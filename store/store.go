// Package store persists prompt history in a bbolt database file. Entries
// are keyed by a monotonically increasing sequence number, so several
// sessions can append to the same file without rewriting it.
package store

import (
	"encoding/binary"
	"errors"
	"math"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketCmd = "cmd"

// ErrNoMatchingCmd is returned when a queried sequence number has no entry.
var ErrNoMatchingCmd = errors.New("no matching command")

// DB is a history store backed by a bbolt file. It implements the
// lineedit.HistoryBackend interface.
type DB struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the history database at path. The
// open waits up to a second for the file lock, so a second prompt pointed
// at the same file fails fast instead of blocking forever.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (s *DB) Close() error {
	return s.db.Close()
}

// NextCmdSeq returns the sequence number the next added command will get.
func (s *DB) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddCmd appends a command and returns its sequence number.
func (s *DB) AddCmd(cmd string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(cmd))
	})
	return int(seq), err
}

// DelCmd deletes the command with the given sequence number.
func (s *DB) DelCmd(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Cmd returns the command with the given sequence number.
func (s *DB) Cmd(seq int) (string, error) {
	var cmd string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		cmd = string(v)
		return nil
	})
	return cmd, err
}

// IterateCmds calls f with the sequence number and text of every command
// in the half-open range [from, upto), in sequence order.
func (s *DB) IterateCmds(from, upto int, f func(seq int, cmd string)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			f(int(unmarshalSeq(k)), string(v))
		}
		return nil
	})
}

// Load returns all stored commands, oldest first. It is part of the
// lineedit.HistoryBackend interface.
func (s *DB) Load() ([]string, error) {
	var cmds []string
	err := s.IterateCmds(0, math.MaxInt, func(_ int, cmd string) {
		cmds = append(cmds, cmd)
	})
	return cmds, err
}

// Append stores one submitted line. It is part of the
// lineedit.HistoryBackend interface.
func (s *DB) Append(line string) error {
	_, err := s.AddCmd(line)
	return err
}

func marshalSeq(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func unmarshalSeq(k []byte) uint64 {
	return binary.BigEndian.Uint64(k)
}
