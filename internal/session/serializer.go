package session

import "sync"

// Serializer не даёт обрабатывать два события одного пользователя одновременно.
// События разных пользователей не блокируют друг друга.
type Serializer struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewSerializer() *Serializer {
	return &Serializer{locks: make(map[int64]*userLock)}
}

// Do выполняет fn под блокировкой пользователя
func (s *Serializer) Do(telegramID int64, fn func()) {
	release := s.acquire(telegramID)
	defer release()
	fn()
}

func (s *Serializer) acquire(telegramID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[telegramID]
	if !ok {
		l = &userLock{}
		s.locks[telegramID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, telegramID)
		}
		s.mu.Unlock()
	}
}

func (s *Serializer) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
