package session

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
	bolt "go.etcd.io/bbolt"
)

var sessionBucketName = []byte("sessions")

// BoltStore хранит состояния в локальном файле bbolt
type BoltStore struct {
	db  *bolt.DB
	now func() time.Time
}

type boltRecord struct {
	State     conversation.State `json:"state"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewBoltStore создаёт bucket при необходимости
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucketName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create sessions bucket: %w", err)
	}

	return &BoltStore{db: db, now: time.Now}, nil
}

func (s *BoltStore) Get(_ context.Context, telegramID int64) (conversation.State, bool, error) {
	var (
		rec   boltRecord
		found bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(sessionBucketName).Get(itob(telegramID))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &rec)
	})
	if err != nil {
		return conversation.Idle(), false, fmt.Errorf("bolt get session: %w", err)
	}
	if !found {
		return conversation.Idle(), false, nil
	}
	return rec.State, true, nil
}

func (s *BoltStore) Set(ctx context.Context, telegramID int64, state conversation.State) error {
	if state.IsIdle() {
		return s.Clear(ctx, telegramID)
	}

	raw, err := json.Marshal(boltRecord{State: state, UpdatedAt: s.now()})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucketName).Put(itob(telegramID), raw)
	})
	if err != nil {
		return fmt.Errorf("bolt put session: %w", err)
	}
	return nil
}

func (s *BoltStore) Clear(_ context.Context, telegramID int64) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucketName).Delete(itob(telegramID))
	})
	if err != nil {
		return fmt.Errorf("bolt delete session: %w", err)
	}
	return nil
}

// Sweep удаляет состояния, не менявшиеся с before.
// Нечитаемые записи тоже удаляются.
func (s *BoltStore) Sweep(_ context.Context, before time.Time) (int, error) {
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucketName)
		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var rec boltRecord
			if err := json.Unmarshal(v, &rec); err != nil || rec.UpdatedAt.Before(before) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		// удалять во время ForEach нельзя
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("bolt sweep sessions: %w", err)
	}
	return removed, nil
}

func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
