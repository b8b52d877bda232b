package session

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps the session in process memory. It exists for tests and
// for embedding isolated sessions side by side; the surface is identical to
// SQLiteStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, sess Session) {
	profile, err := json.Marshal(sess.User)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[keyToken] = []byte(sess.Credential.HeaderValue())
	s.values[keyUser] = profile
}

func (s *MemoryStore) Token(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.values[keyToken])
}

func (s *MemoryStore) User(ctx context.Context) *User {
	s.mu.RLock()
	v := s.values[keyUser]
	s.mu.RUnlock()

	if v == nil {
		return nil
	}
	var u User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil
	}
	return &u
}

func (s *MemoryStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyToken)
	delete(s.values, keyUser)
}

func (s *MemoryStore) Logout(ctx context.Context) {
	s.Clear(ctx)
}
