package repository

import (
	"context"
	"sync"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"
)

// SnapshotMemoryRepository keeps the encoded snapshot in process memory.
// Useful for tests and demos; nothing survives a restart.
type SnapshotMemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

var _ interfaces.ISnapshotRepository = (*SnapshotMemoryRepository)(nil)

func NewSnapshotMemoryRepository() *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{}
}

// NewSnapshotMemoryRepositoryWithData seeds the slot with raw bytes, which
// need not be a valid snapshot.
func NewSnapshotMemoryRepositoryWithData(data []byte) *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{data: append([]byte(nil), data...)}
}

func (r *SnapshotMemoryRepository) Load(_ context.Context) (*entities.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap, ok := entities.DecodeSnapshot(r.data)
	if !ok {
		return nil, nil
	}
	return snap, nil
}

func (r *SnapshotMemoryRepository) Save(_ context.Context, s entities.Snapshot) error {
	payload, err := entities.EncodeSnapshot(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = payload
	r.mu.Unlock()
	return nil
}

func (r *SnapshotMemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	r.data = nil
	r.mu.Unlock()
	return nil
}

// Raw returns a copy of the stored bytes.
func (r *SnapshotMemoryRepository) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.data...)
}
