package legislature

import (
	"log/slog"
	"math/rand/v2"
)

// PartyConfig describes how a party generates its members for one repetition.
type PartyConfig struct {
	// Size is the requested member count. The party may seat fewer when the
	// chamber's shared seat budget runs out first.
	Size int

	// Mu and Sigma parameterize the normal distribution ideal points are
	// drawn from. Draws are clipped to the policy space [-1, 1].
	Mu    float64
	Sigma float64

	// Err and Adj are assigned to every generated member: the initial
	// acceptance radius and the per-vote fatigue increment.
	Err float64
	Adj float64

	// LegacyClip reproduces the historical clipping rule that mapped draws
	// below -1 to 0 rather than -1. Off by default; see DESIGN.md.
	LegacyClip bool
}

// Party owns the legislators it generated. Members are also registered into
// the session's shared roster, which is an index, not a second owner.
type Party struct {
	cfg     PartyConfig
	Members []*Legislator
}

// NewParty generates up to cfg.Size legislators, stopping early without
// error once seatsLeft is exhausted. Under-filling is logged, not fatal.
func NewParty(cfg PartyConfig, rng *rand.Rand, seatsLeft int, logger *slog.Logger) *Party {
	p := &Party{cfg: cfg}
	for i := 0; i < cfg.Size; i++ {
		if len(p.Members) >= seatsLeft {
			logger.Warn("chamber seats exhausted",
				"requested", cfg.Size,
				"seated", len(p.Members))
			break
		}
		ideal := clip(rng.NormFloat64()*cfg.Sigma+cfg.Mu, cfg.LegacyClip)
		p.Members = append(p.Members, &Legislator{
			ID:    i,
			Ideal: ideal,
			Err:   cfg.Err,
			Adj:   cfg.Adj,
		})
	}
	return p
}

// ResetFatigue restores every member's acceptance radius to the party's
// configured initial value. Called when a proposal passes so fatigue never
// leaks across repetitions.
func (p *Party) ResetFatigue() {
	for _, m := range p.Members {
		m.Err = p.cfg.Err
	}
}

func clip(x float64, legacy bool) float64 {
	if x > 1.0 {
		return 1.0
	}
	if x < -1.0 {
		if legacy {
			return 0.0
		}
		return -1.0
	}
	return x
}
