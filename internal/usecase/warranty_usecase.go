package usecase

import (
	"errors"
	"time"

	"sav_interventions/internal/domain/entities"
)

var (
	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrInvalidWarrantyMonths = errors.New("warranty months must be between 1 and 120")
)

// Warranty durations outside this range are caller bugs, not contracts.
const (
	MinWarrantyMonths = 1
	MaxWarrantyMonths = 120
)

// IWarrantyUseCase exposes the warranty computation.
//
// ComputeWarranty is pure and idempotent: it never mutates stored state, so
// it is safe to call repeatedly as an informational check. Re-verifying a
// stored under_warranty flag against it is a caller responsibility.

type IWarrantyUseCase interface {
	ComputeWarranty(purchaseDate time.Time, warrantyMonths int, now time.Time) (entities.WarrantyStatus, error)
}

type WarrantyUseCase struct{}

var _ IWarrantyUseCase = (*WarrantyUseCase)(nil)

func NewWarrantyUseCase() *WarrantyUseCase {
	return &WarrantyUseCase{}
}

// ComputeWarranty derives warranty status from the purchase date and the
// contractual duration.
//
// Semantics:
//   - expiry = purchaseDate + warrantyMonths calendar months (not 30-day blocks)
//   - the expiry date itself is still covered (inclusive boundary)
//   - daysRemaining = max(0, ceil(expiry - now)); 0 once expired
func (u *WarrantyUseCase) ComputeWarranty(purchaseDate time.Time, warrantyMonths int, now time.Time) (entities.WarrantyStatus, error) {
	if purchaseDate.IsZero() {
		return entities.WarrantyStatus{}, ErrInvalidPurchaseDate
	}
	if warrantyMonths < MinWarrantyMonths || warrantyMonths > MaxWarrantyMonths {
		return entities.WarrantyStatus{}, ErrInvalidWarrantyMonths
	}

	expiry := purchaseDate.AddDate(0, warrantyMonths, 0)
	under := !now.After(expiry)

	days := 0
	if under {
		if remainder := expiry.Sub(now); remainder > 0 {
			days = int((remainder + 24*time.Hour - 1) / (24 * time.Hour))
		}
	}

	return entities.WarrantyStatus{
		UnderWarranty: under,
		ExpiryDate:    expiry,
		DaysRemaining: days,
	}, nil
}
