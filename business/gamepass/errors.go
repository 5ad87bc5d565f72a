package gamepass

import (
	"errors"
	"fmt"
)

// Claim rejections are typed results the caller is expected to handle,
// never generic failures. Only infrastructure errors (storage down)
// propagate outside this set.
var (
	// ErrAlreadyClaimed is returned by the storage layer when the
	// uniqueness constraint fires; the service converts it into an
	// idempotent already-claimed outcome, never a hard error.
	ErrAlreadyClaimed = errors.New("reward already claimed")

	ErrTierNotEntitled    = errors.New("pass tier not entitled for this reward track")
	ErrDayNotYetReachable = errors.New("day not yet reachable for this tier")
	ErrInsufficientZen    = errors.New("insufficient zen balance")
	ErrCatalogMissing     = errors.New("no reward configured for this day and tier")
	ErrDeliveryFailed     = errors.New("in-game delivery failed")
)

// ConfirmationRequiredError asks the caller to confirm a skip-ahead
// purchase. It carries the exact price so the client can prompt and
// resubmit with pay_with_zen set.
type ConfirmationRequiredError struct {
	Day     int
	ZenCost int64
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("claiming day %d ahead of schedule costs %d zen, confirmation required", e.Day, e.ZenCost)
}
