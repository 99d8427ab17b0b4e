package interfaces

import (
	"context"
	"thecodecup/internal/domain/entities"
)

// ISnapshotRepository abstracts the single key/value slot holding the app state.
//
// Contract:
//   - Load returns (nil, nil) when there is no snapshot, including when the
//     stored blob cannot be decoded.
//   - Save overwrites the slot (last write wins).
//   - Clear wipes the slot.

type ISnapshotRepository interface {
	Load(ctx context.Context) (*entities.Snapshot, error)
	Save(ctx context.Context, s entities.Snapshot) error
	Clear(ctx context.Context) error
}
