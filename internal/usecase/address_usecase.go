package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"
)

var (
	ErrInvalidRegionID     = errors.New("invalid region id")
	ErrAddressLookupFailed = errors.New("address lookup failed")
)

type IAddressUseCase interface {
	Provinces(ctx context.Context) ([]entities.Region, error)
	Districts(ctx context.Context, provinceID string) ([]entities.Region, error)
	Wards(ctx context.Context, districtID string) ([]entities.Region, error)
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

// AddressUseCase fronts the address directory. The province list rarely
// changes so the first successful answer is kept for the process lifetime.
type AddressUseCase struct {
	lookup interfaces.IAddressLookup

	mu        sync.Mutex
	provinces []entities.Region
}

func NewAddressUseCase(lookup interfaces.IAddressLookup) *AddressUseCase {
	return &AddressUseCase{lookup: lookup}
}

func (uc *AddressUseCase) Provinces(ctx context.Context) ([]entities.Region, error) {
	uc.mu.Lock()
	cached := uc.provinces
	uc.mu.Unlock()
	if cached != nil {
		return append([]entities.Region{}, cached...), nil
	}

	regions, err := uc.lookup.Provinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAddressLookupFailed, err)
	}
	if regions == nil {
		regions = []entities.Region{}
	}

	uc.mu.Lock()
	uc.provinces = regions
	uc.mu.Unlock()
	return append([]entities.Region{}, regions...), nil
}

func (uc *AddressUseCase) Districts(ctx context.Context, provinceID string) ([]entities.Region, error) {
	id, err := normalizeRegionID(provinceID)
	if err != nil {
		return nil, err
	}
	regions, err := uc.lookup.Districts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAddressLookupFailed, err)
	}
	if regions == nil {
		regions = []entities.Region{}
	}
	return regions, nil
}

func (uc *AddressUseCase) Wards(ctx context.Context, districtID string) ([]entities.Region, error) {
	id, err := normalizeRegionID(districtID)
	if err != nil {
		return nil, err
	}
	regions, err := uc.lookup.Wards(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAddressLookupFailed, err)
	}
	if regions == nil {
		regions = []entities.Region{}
	}
	return regions, nil
}

// region ids are numeric strings
func normalizeRegionID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidRegionID
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", ErrInvalidRegionID
		}
	}
	return id, nil
}
