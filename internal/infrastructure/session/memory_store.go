package session

import (
	"context"
	"sync"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]*entities.WizardSession
}

// NewMemoryStore is the redis-free store used in tests and single-node
// development runs.
func NewMemoryStore() repositories.SessionStore {
	return &memoryStore{data: make(map[string]*entities.WizardSession)}
}

func (s *memoryStore) Get(_ context.Context, id string) (*entities.WizardSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *memoryStore) Save(_ context.Context, session *entities.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.data[session.ID] = &copied
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *memoryStore) List(_ context.Context) ([]*entities.WizardSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*entities.WizardSession, 0, len(s.data))
	for _, session := range s.data {
		copied := *session
		sessions = append(sessions, &copied)
	}
	return sessions, nil
}
