// Package legislature implements a one-dimensional spatial-voting chamber.
// A majority and a minority party of legislators with normally distributed
// ideal points vote on proposals until one reaches a simple majority; every
// failed round widens each legislator's acceptance window (fatigue).
package legislature

// Legislator is a single voting agent. Ideal is fixed for the agent's
// lifetime; Err is the current acceptance radius and grows by Adj after
// every vote, so it is monotonically non-decreasing within a repetition.
type Legislator struct {
	ID    int
	Ideal float64
	Err   float64
	Adj   float64
}

// Vote returns true iff proposed lies in the closed interval
// [Ideal-Err, Ideal+Err], evaluated before this call's fatigue increment.
// Err grows by Adj regardless of the outcome: fatigue accrues whether the
// legislator votes yea or nay.
func (l *Legislator) Vote(proposed float64) bool {
	in := proposed >= l.Ideal-l.Err && proposed <= l.Ideal+l.Err
	l.Err += l.Adj
	return in
}

// FindProposal returns the point closest to median that the legislator could
// still accept: median itself when it lies inside the current window,
// otherwise the nearer window edge. Pure; the window is not mutated.
func (l *Legislator) FindProposal(median float64) float64 {
	switch {
	case median < l.Ideal-l.Err:
		return l.Ideal - l.Err
	case median > l.Ideal+l.Err:
		return l.Ideal + l.Err
	default:
		return median
	}
}
