package entities

import "time"

// DefaultWarrantyMonths is the contractual warranty applied when a caller
// does not specify a duration.
const DefaultWarrantyMonths = 24

// WarrantyStatus is the informational result of a warranty computation.
// It is derived, never persisted by the engine itself.
type WarrantyStatus struct {
	UnderWarranty bool      `json:"under_warranty"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysRemaining int       `json:"days_remaining"`
}
