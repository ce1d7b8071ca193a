package session

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/route_order_bot/internal/conversation"
)

type memoryEntry struct {
	state     conversation.State
	updatedAt time.Time
}

// MemoryStore хранит состояния в памяти процесса
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int64]memoryEntry // telegramID -> State
	now     func() time.Time
}

// NewMemoryStore создаёт новое хранилище состояний
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[int64]memoryEntry),
		now:     time.Now,
	}
}

// Get получает текущее состояние пользователя
func (s *MemoryStore) Get(_ context.Context, telegramID int64) (conversation.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[telegramID]
	if !exists {
		return conversation.Idle(), false, nil
	}
	// Возвращаем копию, чтобы изменения не попадали в хранилище без Set
	return e.state.Clone(), true, nil
}

// Set устанавливает состояние пользователя
func (s *MemoryStore) Set(_ context.Context, telegramID int64, state conversation.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state.IsIdle() {
		// Пустое состояние не храним
		delete(s.entries, telegramID)
		return nil
	}
	s.entries[telegramID] = memoryEntry{state: state.Clone(), updatedAt: s.now()}
	return nil
}

// Clear удаляет состояние пользователя
func (s *MemoryStore) Clear(_ context.Context, telegramID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, telegramID)
	return nil
}

// Sweep удаляет состояния, не менявшиеся с before
func (s *MemoryStore) Sweep(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.updatedAt.Before(before) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len количество активных диалогов
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
