package legislature

import (
	"math"
	"testing"
)

func TestLegislatorVote(t *testing.T) {
	tests := []struct {
		name     string
		ideal    float64
		err      float64
		proposed float64
		want     bool
	}{
		{"inside window", 0.5, 0.1, 0.45, true},
		{"at ideal", 0.5, 0.1, 0.5, true},
		{"at lower edge", 0.5, 0.1, 0.4, true},
		{"at upper edge", 0.5, 0.1, 0.6, true},
		{"below window", 0.5, 0.1, 0.39, false},
		{"above window", 0.5, 0.1, 0.61, false},
		{"zero radius accepts only ideal", -0.25, 0, -0.25, true},
		{"zero radius rejects nearby", -0.25, 0, -0.24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Legislator{Ideal: tt.ideal, Err: tt.err, Adj: 0.01}
			if got := l.Vote(tt.proposed); got != tt.want {
				t.Errorf("Vote(%f) = %v, want %v", tt.proposed, got, tt.want)
			}
		})
	}
}

func TestVote_FatigueAccruesEitherWay(t *testing.T) {
	yea := &Legislator{Ideal: 0, Err: 0.5, Adj: 0.01}
	nay := &Legislator{Ideal: 0, Err: 0.5, Adj: 0.01}

	if !yea.Vote(0.1) {
		t.Fatal("expected yea vote")
	}
	if nay.Vote(0.9) {
		t.Fatal("expected nay vote")
	}

	if math.Abs(yea.Err-0.51) > 1e-12 {
		t.Errorf("yea Err = %f, want 0.51", yea.Err)
	}
	if math.Abs(nay.Err-0.51) > 1e-12 {
		t.Errorf("nay Err = %f, want 0.51", nay.Err)
	}
}

func TestVote_FatigueMonotonicity(t *testing.T) {
	// After k votes, Err must equal the initial radius plus k*Adj regardless
	// of the proposal values seen.
	const initial, adj = 0.02, 0.01
	l := &Legislator{Ideal: 0.3, Err: initial, Adj: adj}

	proposals := []float64{0.3, -1, 1, 0.31, 0.29, 2.5, -2.5, 0}
	for k, p := range proposals {
		l.Vote(p)
		want := initial + float64(k+1)*adj
		if math.Abs(l.Err-want) > 1e-12 {
			t.Fatalf("after %d votes Err = %.15f, want %.15f", k+1, l.Err, want)
		}
	}
}

func TestVote_UsesWindowBeforeIncrement(t *testing.T) {
	// 0.13 is outside the initial window [−0.1, 0.1] but inside the widened
	// window after one vote. The first vote on it must be nay.
	l := &Legislator{Ideal: 0, Err: 0.1, Adj: 0.05}

	if l.Vote(0.13) {
		t.Error("first Vote(0.13) should use the pre-increment window and fail")
	}
	if !l.Vote(0.13) {
		t.Error("second Vote(0.13) should pass inside the widened window")
	}
}

func TestFindProposal(t *testing.T) {
	tests := []struct {
		name   string
		ideal  float64
		err    float64
		median float64
		want   float64
	}{
		{"median inside window", 0.5, 0.2, 0.4, 0.4},
		{"median at ideal", 0.5, 0.2, 0.5, 0.5},
		{"median at lower edge", 0.5, 0.2, 0.3, 0.3},
		{"median at upper edge", 0.5, 0.2, 0.7, 0.7},
		{"median below window", 0.5, 0.2, 0.0, 0.3},
		{"median above window", -0.5, 0.2, 0.0, -0.3},
		{"zero radius", 0.5, 0, 0.0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Legislator{Ideal: tt.ideal, Err: tt.err}
			got := l.FindProposal(tt.median)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("FindProposal(%f) = %f, want %f", tt.median, got, tt.want)
			}
		})
	}
}

func TestFindProposal_AlwaysWithinWindow(t *testing.T) {
	l := &Legislator{Ideal: 0.25, Err: 0.1}
	for _, median := range []float64{-1, -0.5, 0, 0.14, 0.2, 0.25, 0.36, 0.5, 1} {
		got := l.FindProposal(median)
		if got < l.Ideal-l.Err || got > l.Ideal+l.Err {
			t.Errorf("FindProposal(%f) = %f outside window [%f, %f]",
				median, got, l.Ideal-l.Err, l.Ideal+l.Err)
		}
	}
}

func TestFindProposal_Pure(t *testing.T) {
	l := &Legislator{Ideal: 0.5, Err: 0.2, Adj: 0.01}
	l.FindProposal(0.0)
	if l.Err != 0.2 {
		t.Errorf("FindProposal mutated Err to %f", l.Err)
	}
}
