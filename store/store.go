// Package store persists record.Word behind three bbolt buckets: a primary
// table keyed by word id, and two secondary indexes (by spelling, by rhyme
// key) holding sorted id lists, mirroring the access patterns the lookup
// path needs -- exact-spell equality, rhyme equality with lemma-id
// inequality ordered by lemma id, and random sampling.
package store

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"math/rand"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/jus1d/rifmuj/record"
)

var (
	bucketRecords = []byte("records")
	bucketBySpell = []byte("by_spell")
	bucketByRhyme = []byte("by_rhyme")
)

// Store wraps a *bbolt.DB holding the three buckets. Open once behind
// [Open]; the returned *Store is safe for concurrent use by multiple
// readers and a single writer, per bbolt's own transaction model.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if necessary) the bbolt database at path and ensures
// all three buckets exist.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketBySpell, bucketByRhyme} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: initialize buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func idKey(id int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b[:]
}

func encodeWord(w record.Word) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeWord(data []byte) (record.Word, error) {
	var w record.Word
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return record.Word{}, err
	}
	return w, nil
}

func encodeIDs(ids []int64) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ids); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeIDs(data []byte) ([]int64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []int64
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func insertSortedUnique(ids []int64, id int64) []int64 {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

// Put writes a batch of words, updating the primary table and both
// secondary indexes in a single transaction.
func (s *Store) Put(words []record.Word) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		bySpell := tx.Bucket(bucketBySpell)
		byRhyme := tx.Bucket(bucketByRhyme)

		for _, w := range words {
			data, err := encodeWord(w)
			if err != nil {
				return fmt.Errorf("store: encode word %d: %w", w.WordID, err)
			}
			if err := records.Put(idKey(w.WordID), data); err != nil {
				return err
			}
			if err := appendIndex(bySpell, w.Spell, w.WordID); err != nil {
				return fmt.Errorf("store: index spell %q: %w", w.Spell, err)
			}
			if err := appendIndex(byRhyme, w.Rhyme, w.WordID); err != nil {
				return fmt.Errorf("store: index rhyme %q: %w", w.Rhyme, err)
			}
		}
		return nil
	})
}

func appendIndex(bucket *bbolt.Bucket, key string, id int64) error {
	ids, err := decodeIDs(bucket.Get([]byte(key)))
	if err != nil {
		return err
	}
	ids = insertSortedUnique(ids, id)
	data, err := encodeIDs(ids)
	if err != nil {
		return err
	}
	return bucket.Put([]byte(key), data)
}

func (s *Store) wordsByIDs(tx *bbolt.Tx, ids []int64) ([]record.Word, error) {
	records := tx.Bucket(bucketRecords)
	words := make([]record.Word, 0, len(ids))
	for _, id := range ids {
		data := records.Get(idKey(id))
		if data == nil {
			continue
		}
		w, err := decodeWord(data)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// BySpell returns every record whose Spell equals spell exactly.
func (s *Store) BySpell(spell string) ([]record.Word, error) {
	var words []record.Word
	err := s.db.View(func(tx *bbolt.Tx) error {
		ids, err := decodeIDs(tx.Bucket(bucketBySpell).Get([]byte(spell)))
		if err != nil {
			return err
		}
		words, err = s.wordsByIDs(tx, ids)
		return err
	})
	return words, err
}

// ByRhyme returns every record whose Rhyme equals rhymeKey and whose
// LemmaID differs from excludeLemmaID, ordered by LemmaID ascending.
func (s *Store) ByRhyme(rhymeKey string, excludeLemmaID int64) ([]record.Word, error) {
	var words []record.Word
	err := s.db.View(func(tx *bbolt.Tx) error {
		ids, err := decodeIDs(tx.Bucket(bucketByRhyme).Get([]byte(rhymeKey)))
		if err != nil {
			return err
		}
		all, err := s.wordsByIDs(tx, ids)
		if err != nil {
			return err
		}
		for _, w := range all {
			if w.LemmaID != excludeLemmaID {
				words = append(words, w)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(words, func(i, j int) bool { return words[i].LemmaID < words[j].LemmaID })
	return words, nil
}

// RandomWord returns a uniformly random record via single-pass reservoir
// sampling over the records bucket. It returns (Word{}, false, nil) if the
// store is empty.
func (s *Store) RandomWord() (record.Word, bool, error) {
	var (
		chosen record.Word
		found  bool
		seen   int64
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketRecords).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			seen++
			if rand.Int63n(seen) == 0 {
				w, err := decodeWord(v)
				if err != nil {
					return err
				}
				chosen = w
				found = true
			}
		}
		return nil
	})
	return chosen, found, err
}
