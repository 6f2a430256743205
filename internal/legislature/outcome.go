package legislature

// Outcome is one immutable per-repetition result row: what the initially
// drawn proposer first put forward, what finally passed, how long it took,
// and the parameters that produced it.
type Outcome struct {
	// Rep is the 1-based repetition number within its batch.
	Rep int

	InitialValue float64
	FinalValue   float64
	Votes        int
	Yeas         int

	MajSize  int
	Distance float64
	MajSigma float64
	MajAdj   float64
	MinSigma float64
	MinAdj   float64
}
