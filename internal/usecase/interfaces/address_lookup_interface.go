package interfaces

import (
	"context"
	"thecodecup/internal/domain/entities"
)

// IAddressLookup abstracts the province/district/ward directory used by the
// address picker. The order engine itself only sees a free-text address.

type IAddressLookup interface {
	Provinces(ctx context.Context) ([]entities.Region, error)
	Districts(ctx context.Context, provinceID string) ([]entities.Region, error)
	Wards(ctx context.Context, districtID string) ([]entities.Region, error)
}
