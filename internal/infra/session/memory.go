package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

type memoryEntry struct {
	caller    domain.Caller
	expiresAt time.Time
}

// MemoryStore хранит абонентов сессий в памяти процесса с TTL
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore создает хранилище сессий в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get возвращает абонента сессии
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Caller, error) {
	s.mu.RLock()
	entry, ok := s.items[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.ttl > 0 && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.items, sessionID)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	caller := entry.caller
	return &caller, nil
}

// Save сохраняет абонента сессии и продлевает TTL
func (s *MemoryStore) Save(_ context.Context, sessionID string, caller domain.Caller) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sessionID] = memoryEntry{caller: caller, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Sweep удаляет просроченные сессии и возвращает их количество
func (s *MemoryStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

// StartSweeper периодически чистит просроченные сессии до отмены ctx
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Len количество хранимых сессий, включая еще не вычищенные
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Delete удаляет сессию
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sessionID)
	return nil
}
