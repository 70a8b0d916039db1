package domain

import "time"

// ResolvePaidDate computes the paid date an invoice must carry after an update that
// requests the given paid state. The rules are evaluated in order:
//
//   - unpaid before and paid requested: stamp now
//   - unpaid requested: clear the stamp
//   - paid before and still paid: keep the original stamp
//
// The first payment moment is therefore never overwritten by repeated paid updates,
// while a reversal followed by a new payment records a fresh stamp.
func ResolvePaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	if current == nil && paid {
		stamp := now
		return &stamp
	}
	if !paid {
		return nil
	}
	return current
}
