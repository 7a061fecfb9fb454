package memory

import (
	"sync"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
)

// snapshotStore - in-memory хранилище текущего снапшота карты.
// Снапшот заменяется целиком по указателю, читатели всегда видят
// согласованный набор записей и участков одного цикла.
type snapshotStore struct {
	mu   sync.RWMutex
	snap *domain.Snapshot
}

// NewSnapshotStore создает пустое хранилище снапшотов
func NewSnapshotStore() repository.SnapshotStore {
	return &snapshotStore{}
}

// Current возвращает текущий снапшот или nil до первой загрузки
func (s *snapshotStore) Current() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Set заменяет текущий снапшот
func (s *snapshotStore) Set(snapshot *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snapshot
}
