package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"thecodecup/internal/adapter/persistence/repository"
	"thecodecup/internal/domain/entities"
	mock_interfaces "thecodecup/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func closePersister(t *testing.T, p *Persister) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))
}

func TestPersister_Coalesces(t *testing.T) {
	repo := repository.NewSnapshotMemoryRepository()
	p := NewPersister(repo, zap.NewNop())
	defer closePersister(t, p)

	for i := 0; i < 50; i++ {
		s := entities.DefaultSnapshot()
		s.TotalPoints = i
		p.Enqueue(s)
	}
	p.Flush()

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, 49, snap.TotalPoints)
}

func TestPersister_ClearAfterSave(t *testing.T) {
	repo := repository.NewSnapshotMemoryRepository()
	p := NewPersister(repo, zap.NewNop())
	defer closePersister(t, p)

	p.Enqueue(entities.DefaultSnapshot())
	p.EnqueueClear()
	p.Flush()

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestPersister_FailedWriteIsSuperseded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	core, logs := observer.New(zap.WarnLevel)
	p := NewPersister(repo, zap.New(core))
	defer closePersister(t, p)

	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Snapshot) error {
				if s.TotalPoints != 2 {
					t.Errorf("expected latest snapshot, got points=%d", s.TotalPoints)
				}
				return nil
			},
		),
	)

	first := entities.DefaultSnapshot()
	first.TotalPoints = 1
	p.Enqueue(first)
	p.Flush()

	second := entities.DefaultSnapshot()
	second.TotalPoints = 2
	p.Enqueue(second)
	p.Flush()

	require.Equal(t, 1, logs.FilterMessageSnippet("saving snapshot failed").Len())
}

func TestPersister_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISnapshotRepository(ctrl)
	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	p := NewPersister(repo, zap.NewNop())
	p.EnqueueClear()
	closePersister(t, p)

	// ignored once closed
	p.Enqueue(entities.DefaultSnapshot())
	p.Flush()
	closePersister(t, p)
}
