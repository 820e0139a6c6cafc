// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package replay records the inputs of an incremental diff so that a session can be replayed
// offline.
//
// A session is a single database file named session-<timestamp>.db in a capture directory. It
// contains the fixed left input and every chunk of the growing right input in arrival order, the
// initial right input being the first chunk. Values are encoded with msgpack, so any element type
// that msgpack can encode can be captured.
//
// Only the most recent sessions are kept in a capture directory, older ones are removed when a new
// session is created.
package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// Keep is the number of sessions kept in a capture directory.
const Keep = 5

const (
	prefix = "session-"
	suffix = ".db"
	layout = "20060102-150405.000000000"
)

var (
	leftKey     = []byte("a")
	chunkBucket = []byte("b")
)

// ErrNoSession is returned by [Latest] if a directory contains no sessions.
var ErrNoSession = errors.New("replay: no session found")

// Writer records a single session.
type Writer struct {
	db   *bbolt.DB
	path string
	init bool
}

// Create starts a new session in dir, creating the directory if necessary. Older sessions are
// removed so that at most [Keep] sessions remain, including the new one.
func Create(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if err := prune(dir, Keep-1); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	path := filepath.Join(dir, prefix+now.Format(layout)+suffix)
	for exists(path) {
		now = now.Add(time.Nanosecond)
		path = filepath.Join(dir, prefix+now.Format(layout)+suffix)
	}
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: time.Second, NoSync: true})
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &Writer{db: db, path: path}, nil
}

// Path returns the path of the session file.
func (w *Writer) Path() string { return w.path }

// Init records the fixed left input a and the initial right input b. It must be called exactly
// once, before any call to Append.
func (w *Writer) Init(a, b any) error {
	if w.init {
		return errors.New("replay: session already initialized")
	}
	w.init = true
	abuf, err := msgpack.Marshal(a)
	if err != nil {
		return fmt.Errorf("replay: encoding left input: %w", err)
	}
	bbuf, err := msgpack.Marshal(b)
	if err != nil {
		return fmt.Errorf("replay: encoding right input: %w", err)
	}
	return w.update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(chunkBucket).Put(leftKey, abuf); err != nil {
			return err
		}
		return appendChunk(tx, bbuf)
	})
}

// Append records a chunk that was appended to the right input.
func (w *Writer) Append(chunk any) error {
	if !w.init {
		return errors.New("replay: session not initialized")
	}
	buf, err := msgpack.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("replay: encoding chunk: %w", err)
	}
	return w.update(func(tx *bbolt.Tx) error {
		return appendChunk(tx, buf)
	})
}

// Close syncs and closes the session file.
func (w *Writer) Close() error {
	if err := w.db.Sync(); err != nil {
		w.db.Close()
		return fmt.Errorf("replay: %w", err)
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}

func (w *Writer) update(fn func(tx *bbolt.Tx) error) error {
	err := w.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(chunkBucket); err != nil {
			return err
		}
		return fn(tx)
	})
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}

// Chunks are stored under their sequence number in big endian so that the bucket iterates in
// arrival order. The left input is stored under a one byte key, which can't collide.
func appendChunk(tx *bbolt.Tx, buf []byte) error {
	b := tx.Bucket(chunkBucket)
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	return b.Put(binary.BigEndian.AppendUint64(nil, seq), buf)
}

// Read reads a session. It returns the left input and all chunks of the right input, starting with
// the initial right input.
func Read[X, Y any](path string) (a []X, b [][]Y, err error) {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: time.Second, ReadOnly: true})
	if err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}
	defer db.Close()

	err = db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(chunkBucket)
		if bucket == nil {
			return fmt.Errorf("%s: empty session", path)
		}
		buf := bucket.Get(leftKey)
		if buf == nil {
			return fmt.Errorf("%s: missing left input", path)
		}
		if err := msgpack.Unmarshal(buf, &a); err != nil {
			return fmt.Errorf("decoding left input: %w", err)
		}
		return bucket.ForEach(func(k, v []byte) error {
			if len(k) != 8 {
				return nil
			}
			var chunk []Y
			if err := msgpack.Unmarshal(v, &chunk); err != nil {
				return fmt.Errorf("decoding chunk %d: %w", binary.BigEndian.Uint64(k), err)
			}
			b = append(b, chunk)
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}
	return a, b, nil
}

// Latest returns the path of the most recent session in dir.
func Latest(dir string) (string, error) {
	sessions, err := list(dir)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", ErrNoSession
	}
	return filepath.Join(dir, sessions[len(sessions)-1]), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// list returns the session file names in dir, oldest first.
func list(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	var sessions []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			sessions = append(sessions, name)
		}
	}
	// The timestamp layout sorts lexicographically.
	slices.Sort(sessions)
	return sessions, nil
}

// prune removes the oldest sessions in dir until at most keep remain.
func prune(dir string, keep int) error {
	sessions, err := list(dir)
	if err != nil {
		return err
	}
	for len(sessions) > keep {
		if err := os.Remove(filepath.Join(dir, sessions[0])); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		sessions = sessions[1:]
	}
	return nil
}
