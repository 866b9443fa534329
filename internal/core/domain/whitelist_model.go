package domain

// Whitelist is the per-identity record controlling discounted-fee
// eligibility. FirstSwapTimestamp is stamped exactly once, on the identity's
// first eligible swap.
type Whitelist struct {
	Address            string
	FirstSwapTimestamp int64
	IsAllow            bool
}

// StampFirstSwap records the time of the identity's first eligible swap.
// Later calls are no-ops. It reports whether the stamp was written.
func (w *Whitelist) StampFirstSwap(now int64) bool {
	if !w.IsAllow || w.FirstSwapTimestamp != 0 {
		return false
	}
	w.FirstSwapTimestamp = now
	return true
}

// IsDiscounted reports whether a swap at the given time is charged the
// discounted platform rate. The window boundary is inclusive: a swap at
// exactly FirstSwapTimestamp+limitTimestamp is still discounted.
func (w *Whitelist) IsDiscounted(limitTimestamp, now int64) bool {
	if !w.IsAllow {
		return false
	}
	return w.FirstSwapTimestamp+limitTimestamp >= now
}
