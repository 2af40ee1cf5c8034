package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/trivium-games/trivium/internal/models"
	bolt "go.etcd.io/bbolt"
)

var questionsBucket = []byte("questions")

// Bolt is a bbolt-backed Repository. The file is the durable catalogue the
// process lazily reads from; session state itself is never persisted.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the catalogue file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening catalogue: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(questionsBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating questions bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the underlying bbolt handle.
func (b *Bolt) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing catalogue: %w", err)
	}
	return nil
}

// Put stores a question, keyed by its ID. Used to seed the catalogue file.
func (b *Bolt) Put(q models.Question) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshaling question %s: %w", q.ID, err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(questionsBucket).Put(q.ID[:], data)
	})
}

// Query scans the catalogue and returns the questions passing the filter.
func (b *Bolt) Query(f Filter) ([]models.Question, error) {
	var out []models.Question
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(questionsBucket).ForEach(func(_, v []byte) error {
			var q models.Question
			if err := json.Unmarshal(v, &q); err != nil {
				return fmt.Errorf("unmarshaling question: %w", err)
			}
			if f.Matches(q) {
				out = append(out, q)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
