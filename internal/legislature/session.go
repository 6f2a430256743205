package legislature

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"github.com/jstigall/legisim/internal/logging"
)

// ErrNoMajority is returned when a repetition exhausts its round cap without
// any proposal reaching a strict majority.
var ErrNoMajority = errors.New("no proposal reached a majority within the round cap")

// Session runs one repetition from party generation to a passed proposal.
// It owns the combined roster, the chamber median and the selected proposer;
// nothing is shared across sessions, so independent sessions may run on
// separate goroutines without coordination.
type Session struct {
	cfg    Config
	rep    int
	logger *slog.Logger
	trace  *logging.TraceLogger

	rng      *rand.Rand
	majority *Party
	minority *Party
	roster   []*Legislator
	median   float64
	proposer *Legislator
}

// NewSession builds the repetition's parties and roster. The repetition
// index feeds the seed derivation, so (cfg.Seed, rep) fully determines party
// composition, proposer choice and every round's outcome. A nil logger is
// replaced with slog.Default; a nil trace logger disables round tracing.
func NewSession(cfg Config, rep int, logger *slog.Logger, trace *logging.TraceLogger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		cfg:    cfg,
		rep:    rep,
		logger: logger,
		trace:  trace,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+uint64(rep))),
	}

	// Majority seats first, minority fills whatever remains. Each party is
	// bounded by the seats still open so the roster can never exceed the
	// chamber size.
	s.majority = NewParty(PartyConfig{
		Size:       cfg.MajoritySize,
		Mu:         cfg.Distance / 2,
		Sigma:      cfg.Majority.Sigma,
		Err:        cfg.Majority.Err,
		Adj:        cfg.Majority.Adj,
		LegacyClip: cfg.LegacyClip,
	}, s.rng, cfg.Seats, logger)

	s.minority = NewParty(PartyConfig{
		Size:       cfg.Seats - cfg.MajoritySize,
		Mu:         -cfg.Distance / 2,
		Sigma:      cfg.Minority.Sigma,
		Err:        cfg.Minority.Err,
		Adj:        cfg.Minority.Adj,
		LegacyClip: cfg.LegacyClip,
	}, s.rng, cfg.Seats-len(s.majority.Members), logger)

	s.roster = make([]*Legislator, 0, len(s.majority.Members)+len(s.minority.Members))
	s.roster = append(s.roster, s.majority.Members...)
	s.roster = append(s.roster, s.minority.Members...)
	sort.Slice(s.roster, func(i, j int) bool {
		return s.roster[i].Ideal < s.roster[j].Ideal
	})

	s.median = s.roster[len(s.roster)/2].Ideal
	s.proposer = s.roster[s.rng.IntN(len(s.roster))]

	return s
}

// Run executes the voting loop to convergence and returns the repetition's
// outcome. The proposer drawn at construction re-proposes every round; a
// failed round leaves every window widened by that round's fatigue, so the
// next proposal drifts toward the chamber median. On a pass, every
// legislator's window is reset to its party's configured initial value.
func (s *Session) Run() (Outcome, error) {
	initial := s.proposer.FindProposal(s.median)
	s.logger.Debug("session starting",
		"rep", s.rep,
		"roster", len(s.roster),
		"median", s.median,
		"proposer_ideal", s.proposer.Ideal,
		"initial", initial)

	votes := 0
	for {
		proposal := s.proposer.FindProposal(s.median)
		yeas := s.tally(proposal)
		votes++
		passed := 2*yeas > len(s.roster)

		s.logger.Log(context.Background(), logging.LevelTrace, "round tallied",
			"rep", s.rep,
			"round", votes,
			"proposal", proposal,
			"yeas", yeas,
			"passed", passed)
		s.trace.Log(map[string]any{
			"rep":      s.rep,
			"round":    votes,
			"proposal": proposal,
			"yeas":     yeas,
			"nays":     len(s.roster) - yeas,
			"passed":   passed,
		})

		if passed {
			s.majority.ResetFatigue()
			s.minority.ResetFatigue()
			return Outcome{
				InitialValue: initial,
				FinalValue:   proposal,
				Votes:        votes,
				Yeas:         yeas,
				MajSize:      s.cfg.MajoritySize,
				Distance:     s.cfg.Distance,
				MajSigma:     s.cfg.Majority.Sigma,
				MajAdj:       s.cfg.Majority.Adj,
				MinSigma:     s.cfg.Minority.Sigma,
				MinAdj:       s.cfg.Minority.Adj,
			}, nil
		}

		if s.cfg.MaxRounds > 0 && votes >= s.cfg.MaxRounds {
			return Outcome{}, fmt.Errorf("repetition %d diverged after %d rounds: %w",
				s.rep, votes, ErrNoMajority)
		}
	}
}

// tally submits a proposal to the full roster and counts yeas. Every
// legislator votes, proposer included, and every ballot accrues fatigue.
// The proposer counts as yea even when their own window test fails: the
// self-vote is part of the tally rule, not an accident of ballot order.
func (s *Session) tally(proposal float64) int {
	yeas := 0
	for _, m := range s.roster {
		if m.Vote(proposal) {
			yeas++
		} else if m == s.proposer {
			yeas++
		}
	}
	return yeas
}

// Roster exposes the sorted roster for inspection in tests and tooling.
func (s *Session) Roster() []*Legislator { return s.roster }

// Median returns the chamber median ideal computed at construction.
func (s *Session) Median() float64 { return s.median }
