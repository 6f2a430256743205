package legislature

import "fmt"

// DefaultMaxRounds caps the voting loop so a configuration that can never
// reach a majority surfaces as ErrNoMajority instead of hanging forever.
const DefaultMaxRounds = 100000

// PartyParams holds the per-party distribution and fatigue parameters.
type PartyParams struct {
	Sigma float64
	Err   float64
	Adj   float64
}

// Config describes one repetition of the voting process. Party means sit at
// ±Distance/2; the minority is sized to fill the remaining seats.
type Config struct {
	Seats        int
	MajoritySize int
	Distance     float64
	Majority     PartyParams
	Minority     PartyParams

	// Seed is the base random seed. Repetition rep derives its own
	// generator from (Seed, rep) so every repetition is individually
	// reproducible.
	Seed uint64

	// MaxRounds aborts a repetition that has not passed a proposal after
	// this many voting rounds. Zero disables the cap.
	MaxRounds int

	// LegacyClip applies the historical asymmetric ideal-point clipping.
	LegacyClip bool
}

// DefaultConfig returns the canonical 101-seat chamber: 51-seat majority,
// party means one unit apart, sigma 0.1, initial window 0.02, fatigue 0.01.
func DefaultConfig() Config {
	return Config{
		Seats:        101,
		MajoritySize: 51,
		Distance:     1.0,
		Majority:     PartyParams{Sigma: 0.1, Err: 0.02, Adj: 0.01},
		Minority:     PartyParams{Sigma: 0.1, Err: 0.02, Adj: 0.01},
		MaxRounds:    DefaultMaxRounds,
	}
}

// Validate rejects configurations that would produce nonsensical or
// non-terminating runs. Called before any repetition begins.
func (c Config) Validate() error {
	if c.Seats < 1 {
		return fmt.Errorf("seats must be at least 1, got %d", c.Seats)
	}
	if c.MajoritySize < 1 {
		return fmt.Errorf("majority size must be at least 1, got %d", c.MajoritySize)
	}
	if c.MajoritySize > c.Seats {
		return fmt.Errorf("majority size %d exceeds %d seats", c.MajoritySize, c.Seats)
	}
	if c.Distance < 0 {
		return fmt.Errorf("distance between party means must be non-negative, got %f", c.Distance)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds must be non-negative, got %d", c.MaxRounds)
	}
	if err := c.Majority.validate("majority"); err != nil {
		return err
	}
	return c.Minority.validate("minority")
}

func (p PartyParams) validate(name string) error {
	if p.Sigma <= 0 {
		return fmt.Errorf("%s sigma must be positive, got %f", name, p.Sigma)
	}
	if p.Err < 0 {
		return fmt.Errorf("%s initial error must be non-negative, got %f", name, p.Err)
	}
	if p.Adj < 0 {
		return fmt.Errorf("%s round adjustment must be non-negative, got %f", name, p.Adj)
	}
	return nil
}
